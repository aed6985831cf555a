package cmd

import (
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/db"
	"github.com/spf13/cobra"
)

var (
	dynamoEndpoint string
	dynamoRegion   string
	dynamoTable    string
)

func init() {
	flags := dynamoCmd.PersistentFlags()
	flags.StringVar(&dynamoEndpoint, "endpoint", constants.GetDynamoEndpoint(), "DynamoDB endpoint")
	flags.StringVar(&dynamoRegion, "region", constants.GetDynamoRegion(), "DynamoDB region")
	flags.StringVar(&dynamoTable, "table", constants.GetDynamoTable(), "DynamoDB table")
	dynamoCmd.AddCommand(dynamoPushCmd)
	dynamoCmd.AddCommand(dynamoPullCmd)
	rootCmd.AddCommand(dynamoCmd)
}

var dynamoCmd = &cobra.Command{
	Use:   "dynamo",
	Short: "Copies the store to and from a DynamoDB table",
}

var dynamoPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Writes every store entry to the table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}
		client, err := db.NewClient(dynamoEndpoint, dynamoRegion)
		if err != nil {
			return err
		}
		return db.SaveStore(client, dynamoTable, st)
	},
}

var dynamoPullCmd = &cobra.Command{
	Use:   "pull [path]",
	Short: "Reads the table and writes it as store JSON, to stdout without a path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := db.NewClient(dynamoEndpoint, dynamoRegion)
		if err != nil {
			return err
		}
		st, err := db.LoadStore(client, dynamoTable)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return st.Export(cmd.OutOrStdout())
		}
		return st.ExportFile(args[0])
	},
}
