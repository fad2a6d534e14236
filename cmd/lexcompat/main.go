// Command lexcompat is a small inspection CLI around the lexcompat
// library. Since the upstream lexer is a black-box dependency supplied
// by the caller, this binary doesn't embed one: it reads a JSON-encoded
// upstream token dump, runs it through the driver, and prints the
// resulting reference-comparable token stream, optionally recording it
// as a CBOR snapshot for later diffing.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aledsdavies/lexcompat"
	"github.com/aledsdavies/lexcompat/internal/snapshot"
	"github.com/aledsdavies/lexcompat/tokenvariant"
	"github.com/aledsdavies/lexcompat/upstream"
	"github.com/spf13/cobra"
)

var (
	snapshotPath string
	tabWidth     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lexcompat",
	Short: "Inspect reference-comparable token streams produced by lexcompat",
}

var dumpCmd = &cobra.Command{
	Use:   "dump <source-file> <upstream-tokens.json>",
	Short: "Run an upstream token dump through the driver and print the result",
	Long: `dump takes the original source file and a JSON array of upstream
tokens captured from whatever upstream lexer the caller is validating
(one object per token: {"kind", "offset", "value", "state"}), feeds them
through the driver, and prints the reference-comparable token stream.`,
	Args: cobra.ExactArgs(2),
	RunE: runDump,
}

var checkCmd = &cobra.Command{
	Use:   "check <source-file> <upstream-tokens.json> <snapshot-file>",
	Short: "Compare a fresh run against a previously recorded CBOR snapshot",
	Long: `check re-runs the driver over the given source and upstream token
dump, decodes the CBOR snapshot recorded earlier by "dump --snapshot",
and reports any mismatch between the two token streams. Exits non-zero
on a mismatch so it can gate a CI job against stored golden fixtures.`,
	Args: cobra.ExactArgs(3),
	RunE: runCheck,
}

func init() {
	dumpCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "write a CBOR snapshot of the token stream to this path")
	dumpCmd.Flags().IntVar(&tabWidth, "tab-width", 8, "tab width used by the dedent pass")
	rootCmd.AddCommand(dumpCmd)

	checkCmd.Flags().IntVar(&tabWidth, "tab-width", 8, "tab width used by the dedent pass")
	rootCmd.AddCommand(checkCmd)
}

// upstreamTokenRecord is the on-disk shape of one captured upstream token.
type upstreamTokenRecord struct {
	Kind   string `json:"kind"`
	Offset int    `json:"offset"`
	Value  string `json:"value"`
	State  int32  `json:"state"`
}

func runDump(cmd *cobra.Command, args []string) error {
	sourcePath, tokensPath := args[0], args[1]

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", sourcePath, err)
	}

	raw, err := os.ReadFile(tokensPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", tokensPath, err)
	}
	var records []upstreamTokenRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("parse %s: %w", tokensPath, err)
	}

	up := buildFake(records)

	result, err := lexcompat.Lex(up, source, lexcompat.WithTabWidth(tabWidth))
	if err != nil {
		return fmt.Errorf("lex %s: %w", sourcePath, err)
	}

	for _, tok := range result.Tokens {
		fmt.Fprintln(cmd.OutOrStdout(), tok.String())
	}
	if result.HasErrors() {
		for _, e := range result.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", e)
		}
	}

	if snapshotPath != "" {
		return writeSnapshot(snapshotPath, result)
	}
	return nil
}

func buildFake(records []upstreamTokenRecord) *upstream.Fake {
	b := upstream.NewBuilder()
	for _, r := range records {
		b = b.Token(r.Kind, r.Offset, r.Value, r.State)
	}
	return b.Fake()
}

func runCheck(cmd *cobra.Command, args []string) error {
	sourcePath, tokensPath, snapPath := args[0], args[1], args[2]

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", sourcePath, err)
	}
	raw, err := os.ReadFile(tokensPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", tokensPath, err)
	}
	var records []upstreamTokenRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("parse %s: %w", tokensPath, err)
	}

	snapData, err := os.ReadFile(snapPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", snapPath, err)
	}
	snap, err := snapshot.Decode(snapData)
	if err != nil {
		return fmt.Errorf("decode %s: %w", snapPath, err)
	}

	up := buildFake(records)
	result, err := lexcompat.Lex(up, source, lexcompat.WithTabWidth(tabWidth))
	if err != nil {
		return fmt.Errorf("lex %s: %w", sourcePath, err)
	}

	if result.Fingerprint.String() != snap.SourceFingerprint {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: source fingerprint changed (%s -> %s); snapshot may be stale\n",
			snap.SourceFingerprint, result.Fingerprint.String())
	}

	got := make([]tokenvariant.Token, len(result.Tokens))
	for i, tok := range result.Tokens {
		got[i] = tok.Token
	}
	if diff := tokenvariant.Diff(got, snap.Tokens); diff != "" {
		fmt.Fprint(cmd.ErrOrStderr(), diff)
		return fmt.Errorf("token stream does not match snapshot %s", snapPath)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok: matches snapshot")
	return nil
}

func writeSnapshot(path string, result lexcompat.Result) error {
	tuples := make([]tokenvariant.Tuple, len(result.Tokens))
	for i, tok := range result.Tokens {
		tuples[i] = tok.Tuple
	}
	snap := snapshot.Snapshot{
		SourceFingerprint: result.Fingerprint.String(),
		Tokens:            tuples,
	}
	data, err := snapshot.Encode(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "wrote snapshot %s (fingerprint %s)\n", path, snap.SourceFingerprint)
	return nil
}
