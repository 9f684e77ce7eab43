//go:generate go run go.uber.org/mock/mockgen -source=verdict.go -destination=../mocks/mock_verdict_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"toxic-lab/domain"
	"toxic-lab/domain/search"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const VerdictPrefix = "verdict:"

type IVerdictRepository interface {
	Store(verdict domain.Verdict) error
	GetVerdicts(cursor *string) ([]domain.Verdict, *string, error)
	Search(ctx context.Context, query search.Query) ([]domain.Verdict, uint64, error)
}

type VerdictRepository struct {
	db            *badger.DB
	index         *bluge.Writer
	log           *slog.Logger
	limitVerdicts *int
}

func NewVerdictRepository(db *badger.DB, index *bluge.Writer, log *slog.Logger, limitVerdicts *int) VerdictRepository {
	return VerdictRepository{db: db, index: index, log: log, limitVerdicts: limitVerdicts}
}

// Store persists a verdict in BadgerDB and indexes its comment in Bluge.
// The key is formatted as "verdict:{timestamp_padded}:{uuid}" so that verdicts sort
// chronologically and two verdicts of the same nanosecond never collide.
func (r VerdictRepository) Store(verdict domain.Verdict) error {
	key := verdictKey(verdict)
	value, err := encode(map[string]any{
		"id":            verdict.ID.String(),
		"comment":       verdict.Comment,
		"normalized":    verdict.Normalized,
		"censored":      verdict.Censored,
		"label":         float64(verdict.Label),
		"score":         verdict.Score,
		"lang":          verdict.Lang,
		"blocked_words": lo.ToAnySlice(verdict.BlockedWords),
		"at":            verdict.At.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return err
	}

	doc := bluge.NewDocument(verdict.ID.String()).
		AddField(bluge.NewTextField("comment", verdict.Comment)).
		AddField(bluge.NewKeywordField("label", verdict.Label.String())).
		AddField(bluge.NewKeywordField("lang", verdict.Lang)).
		AddField(bluge.NewStoredOnlyField("key", []byte(key)))
	if err := r.index.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index verdict %s: %w", verdict.ID, err)
	}
	return nil
}

// GetVerdicts pages through verdicts, newest first.
// The returned cursor is passed back to fetch the next page.
func (r VerdictRepository) GetVerdicts(cursor *string) ([]domain.Verdict, *string, error) {
	var verdicts []domain.Verdict
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(VerdictPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Past the newest possible timestamp, then walk backwards
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitVerdicts != nil && len(verdicts) == *r.limitVerdicts {
				r.log.Debug(fmt.Sprintf("Maximum of %d verdicts reached", *r.limitVerdicts))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			err := item.Value(func(value []byte) error {
				verdict, err := ToVerdict(value)
				if err != nil {
					return err
				}
				verdicts = append(verdicts, verdict)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return verdicts, &lastKey, nil
}

// Search runs a full text match on stored comments, narrowed by the label and
// language filters, and returns the matching verdicts by relevance together
// with the total number of hits.
func (r VerdictRepository) Search(ctx context.Context, query search.Query) ([]domain.Verdict, uint64, error) {
	reader, err := r.index.Reader()
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = reader.Close() }()

	request := bluge.NewTopNSearch(query.Limit, toBlugeQuery(query)).
		WithStandardAggregations()
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, err
	}

	var keys []string
	match, err := matches.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "key" {
				keys = append(keys, string(value))
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, 0, err
	}

	verdicts := make([]domain.Verdict, 0, len(keys))
	err = r.db.View(func(txn *badger.Txn) error {
		for _, key := range keys {
			item, err := txn.Get([]byte(key))
			if err != nil {
				return fmt.Errorf("load verdict %s: %w", key, err)
			}
			err = item.Value(func(value []byte) error {
				verdict, err := ToVerdict(value)
				if err != nil {
					return err
				}
				verdicts = append(verdicts, verdict)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return verdicts, matches.Aggregations().Count(), nil
}

func toBlugeQuery(query search.Query) bluge.Query {
	if query.Empty() {
		return bluge.NewMatchAllQuery()
	}
	boolean := bluge.NewBooleanQuery()
	if query.Terms != "" {
		boolean.AddMust(bluge.NewMatchQuery(query.Terms).SetField("comment"))
	}
	if query.Label != "" {
		boolean.AddMust(bluge.NewTermQuery(query.Label).SetField("label"))
	}
	if query.Lang != "" {
		boolean.AddMust(bluge.NewTermQuery(query.Lang).SetField("lang"))
	}
	return boolean
}

func verdictKey(verdict domain.Verdict) string {
	return fmt.Sprintf("%s%019d:%s", VerdictPrefix, verdict.At.UnixNano(), verdict.ID)
}

// ToVerdict decodes a stored verdict value.
func ToVerdict(value []byte) (domain.Verdict, error) {
	record, err := decode(value)
	if err != nil {
		return domain.Verdict{}, err
	}
	id, err := uuid.Parse(stringField(record, "id"))
	if err != nil {
		return domain.Verdict{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, stringField(record, "at"))
	if err != nil {
		return domain.Verdict{}, err
	}
	return domain.Verdict{
		ID:           id,
		Comment:      stringField(record, "comment"),
		Normalized:   stringField(record, "normalized"),
		Censored:     stringField(record, "censored"),
		Label:        domain.Label(numberField(record, "label")),
		Score:        numberField(record, "score"),
		Lang:         stringField(record, "lang"),
		BlockedWords: stringsField(record, "blocked_words"),
		At:           at.UTC(),
	}, nil
}
