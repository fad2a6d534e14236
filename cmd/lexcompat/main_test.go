package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/lexcompat"
)

func TestBuildFakeReplaysRecordsInOrder(t *testing.T) {
	records := []upstreamTokenRecord{
		{Kind: "tIDENTIFIER", Offset: 0, Value: "a", State: 0},
		{Kind: "tNL", Offset: 1, Value: "\n", State: 0},
	}

	fake := buildFake(records)

	result, err := fake.Lex(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Tokens) != len(records) {
		t.Fatalf("got %d tokens, want %d", len(result.Tokens), len(records))
	}
	for i, rec := range records {
		got := result.Tokens[i]
		if got.Token.Kind != rec.Kind || string(got.Token.Value) != rec.Value {
			t.Errorf("token %d = %+v, want kind=%q value=%q", i, got, rec.Kind, rec.Value)
		}
	}
}

func writeCheckFixtures(t *testing.T) (sourcePath, tokensPath string) {
	t.Helper()
	dir := t.TempDir()

	sourcePath = filepath.Join(dir, "source.rb")
	if err := os.WriteFile(sourcePath, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	records := []upstreamTokenRecord{
		{Kind: "tIDENTIFIER", Offset: 0, Value: "x", State: 0},
		{Kind: "tNL", Offset: 1, Value: "\n", State: 0},
		{Kind: "tEOF", Offset: 2, Value: "", State: 0},
	}
	raw, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	tokensPath = filepath.Join(dir, "tokens.json")
	if err := os.WriteFile(tokensPath, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	return sourcePath, tokensPath
}

func newTestCmd() *cobra.Command {
	c := &cobra.Command{}
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	return c
}

func TestRunCheckPassesAgainstItsOwnSnapshot(t *testing.T) {
	sourcePath, tokensPath := writeCheckFixtures(t)
	snapPath := filepath.Join(filepath.Dir(sourcePath), "snap.cbor")

	tabWidth = 8
	if err := writeSnapshotForTest(snapPath, sourcePath, tokensPath); err != nil {
		t.Fatalf("writeSnapshotForTest: %v", err)
	}

	checkOut := newTestCmd()
	if err := runCheck(checkOut, []string{sourcePath, tokensPath, snapPath}); err != nil {
		t.Fatalf("runCheck against its own snapshot: %v\nstderr: %s", err, checkOut.ErrOrStderr())
	}
}

func TestRunCheckReportsMismatch(t *testing.T) {
	sourcePath, tokensPath := writeCheckFixtures(t)
	snapPath := filepath.Join(filepath.Dir(sourcePath), "snap.cbor")
	if err := writeSnapshotForTest(snapPath, sourcePath, tokensPath); err != nil {
		t.Fatalf("writeSnapshotForTest: %v", err)
	}

	// Re-point tokensPath at a stream that lexes differently, so the fresh
	// run diverges from the recorded snapshot.
	mismatchedRecords := []upstreamTokenRecord{
		{Kind: "tIDENTIFIER", Offset: 0, Value: "y", State: 0},
		{Kind: "tNL", Offset: 1, Value: "\n", State: 0},
		{Kind: "tEOF", Offset: 2, Value: "", State: 0},
	}
	raw, err := json.Marshal(mismatchedRecords)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tokensPath, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	checkOut := newTestCmd()
	if err := runCheck(checkOut, []string{sourcePath, tokensPath, snapPath}); err == nil {
		t.Fatal("expected runCheck to report a mismatch")
	}
}

// writeSnapshotForTest mirrors runDump's --snapshot path without needing a
// live cobra.Command: it lexes the fixture and writes the resulting
// snapshot to path.
func writeSnapshotForTest(path, sourcePath, tokensPath string) error {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(tokensPath)
	if err != nil {
		return err
	}
	var records []upstreamTokenRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return err
	}
	up := buildFake(records)
	result, err := lexcompat.Lex(up, source, lexcompat.WithTabWidth(tabWidth))
	if err != nil {
		return err
	}
	return writeSnapshot(path, result)
}
