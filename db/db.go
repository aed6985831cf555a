package db

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/store"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
)

var log = &logging.Log

const (
	kindChord  = "chord"
	kindScale  = "scale"
	kindTuning = "tuning"
)

// record is one item of the store table. PK is "<kind>#<name>".
type record struct {
	PK      string        `dynamodbav:"PK"`
	Offsets []int         `dynamodbav:"Offsets,omitempty"`
	Tuning  *model.Tuning `dynamodbav:"Tuning,omitempty"`
}

func NewClient(endpoint, region string) (*dynamodb.DynamoDB, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return dynamodb.New(sess), nil
}

func splitKey(pk string) (kind, name string, err error) {
	parts := strings.SplitN(pk, "#", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", errors.Wrapf(theoryerr.ErrInvalidArgument, "malformed key %q", pk)
	}
	return parts[0], parts[1], nil
}

func addRecord(st *store.Store, item map[string]*dynamodb.AttributeValue) error {
	var r record
	if err := dynamodbattribute.UnmarshalMap(item, &r); err != nil {
		return errors.Wrap(err, "unmarshalling item")
	}
	kind, name, err := splitKey(r.PK)
	if err != nil {
		return err
	}

	switch kind {
	case kindChord:
		return st.AddChord(name, r.Offsets)
	case kindScale:
		return st.AddScale(name, r.Offsets)
	case kindTuning:
		if r.Tuning == nil {
			return errors.Wrapf(theoryerr.ErrInvalidArgument, "tuning %q has no strings", name)
		}
		return st.AddTuning(name, *r.Tuning)
	}
	return errors.Wrapf(theoryerr.ErrInvalidArgument, "unknown kind %q", kind)
}

// LoadStore scans the whole table into a new store.
func LoadStore(client dynamodbiface.DynamoDBAPI, table string) (*store.Store, error) {
	st := store.New()
	input := &dynamodb.ScanInput{TableName: aws.String(table)}
	var pages, items int
	for {
		out, err := client.Scan(input)
		if err != nil {
			return nil, errors.Wrap(err, "error from DynamoDB")
		}
		pages++
		for _, item := range out.Items {
			if err := addRecord(st, item); err != nil {
				return nil, err
			}
			items++
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	log.Info().Str("table", table).Int("pages", pages).Int("items", items).Msg("loaded store from DynamoDB")
	return st, nil
}

func records(st *store.Store) []record {
	doc := st.Document()
	var res []record
	for _, name := range st.ChordNames() {
		res = append(res, record{PK: kindChord + "#" + name, Offsets: doc.Chords[name]})
	}
	for _, name := range st.ScaleNames() {
		res = append(res, record{PK: kindScale + "#" + name, Offsets: doc.Scales[name]})
	}
	for _, name := range st.TuningNames() {
		t := doc.Tunings[name]
		res = append(res, record{PK: kindTuning + "#" + name, Tuning: &t})
	}
	return res
}

// SaveStore puts every entry of st into the table, one item each.
func SaveStore(client dynamodbiface.DynamoDBAPI, table string, st *store.Store) error {
	recs := records(st)
	for _, r := range recs {
		item, err := dynamodbattribute.MarshalMap(r)
		if err != nil {
			return errors.Wrapf(err, "marshalling %v", r.PK)
		}
		_, err = client.PutItem(&dynamodb.PutItemInput{
			TableName: aws.String(table),
			Item:      item,
		})
		if err != nil {
			return errors.Wrapf(err, "putting %v", r.PK)
		}
	}
	log.Info().Str("table", table).Int("items", len(recs)).Msg("saved store to DynamoDB")
	return nil
}
