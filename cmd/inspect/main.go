package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"toxic-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", repositories.VerdictPrefix, "Prefix to scan (verdict: or sample:)")
	port := flag.Int("http", 0, "Serve the browser inspector on this port instead of printing a table")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	if *port > 0 {
		serve(db, *port)
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header(*prefix))
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				row, err := toRow(*prefix, key, v)
				if err != nil {
					// One unreadable entry should not hide the rest of the scan
					fmt.Printf("Error decoding key %s: %v\n", key, err)
					return nil
				}
				table.Append(row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func header(prefix string) []string {
	if strings.HasPrefix(prefix, repositories.SamplePrefix) {
		return []string{"Key", "Label", "Text"}
	}
	return []string{"Key", "Time", "Verdict", "Score", "Lang", "Blocked", "Comment"}
}

func toRow(prefix, key string, value []byte) ([]string, error) {
	if strings.HasPrefix(prefix, repositories.SamplePrefix) {
		sample, err := repositories.ToSample(value)
		if err != nil {
			return nil, err
		}
		return []string{key, fmt.Sprint(sample.Label), sample.Text}, nil
	}
	verdict, err := repositories.ToVerdict(value)
	if err != nil {
		return nil, err
	}
	verdictLabel := "CLEAN"
	if verdict.Toxic() {
		verdictLabel = "TOXIC"
	}
	return []string{
		key,
		verdict.At.Format("15:04:05"),
		verdictLabel,
		fmt.Sprintf("%.4f", verdict.Score),
		verdict.Lang,
		strings.Join(verdict.BlockedWords, ", "),
		verdict.Comment,
	}, nil
}

// serve exposes the store in the browser until interrupted.
func serve(db *badger.DB, port int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Inspector available at http://localhost:%d/inspect?prefix=%s\n", port, repositories.VerdictPrefix)
	database.StartDebugServer(db, port, "/inspect", VerdictMapper)
	<-ctx.Done()
}

// VerdictMapper renders stored verdicts and samples for the browser inspector.
func VerdictMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	switch {
	case strings.HasPrefix(key, repositories.VerdictPrefix):
		verdict, err := repositories.ToVerdict(val)
		if err != nil {
			row.Detail = "Error: decode failed"
			return row
		}
		row.Type = strings.ToUpper(verdict.Label.String())
		if len(verdict.BlockedWords) > 0 {
			row.Type = "BLOCKED"
		}
		row.Detail = verdict.Censored
	case strings.HasPrefix(key, repositories.SamplePrefix):
		sample, err := repositories.ToSample(val)
		if err != nil {
			row.Detail = "Error: decode failed"
			return row
		}
		row.Type = "SAMPLE"
		row.Detail = sample.Text
	}
	return row
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// A crashed writer leaves a log that only a writable open can truncate
		if strings.Contains(err.Error(), "Log truncate required") {
			repair, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = repair.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
