package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/boosterbox/internal/card"
)

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	var cards []card.Card
	add := func(n int, r string) {
		for i := 0; i < n; i++ {
			cards = append(cards, card.Card{ID: fmt.Sprintf("OP14-%s%03d", r, i), Rarity: r, Name: "Test " + r})
		}
	}
	add(170, "C")
	add(75, "UC")
	add(30, "R")
	add(10, "SR")
	add(2, "SEC")
	add(8, "L")

	data, err := json.Marshal(cards)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "cards.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
}

// run executes the root command and returns what it printed to stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	done := make(chan string)
	go func() {
		var sb strings.Builder
		buf := make([]byte, 4096)
		for {
			n, err := r.Read(buf)
			sb.Write(buf[:n])
			if err != nil {
				break
			}
		}
		done <- sb.String()
	}()

	RootCmd.SetArgs(args)
	runErr := RootCmd.Execute()
	w.Close()
	return <-done, runErr
}

// resetFlags clears flag values left behind by earlier runs
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		RootCmd.PersistentFlags().Set("catalog", "")
		exportCmd.Flags().Set("out", "")
		exportCmd.Flags().Set("qr", "false")
		boxCmd.Flags().Set("json", "false")
		prereleaseCmd.Flags().Set("json", "false")
	})
}

func TestBoxJSON(t *testing.T) {
	isolateConfig(t)
	resetFlags(t)
	path := writeTestCatalog(t)

	out, err := run(t, "box", "--catalog", path, "--json")
	if err != nil {
		t.Fatalf("box: %v", err)
	}

	var body struct {
		Cards []card.Card `json:"cards"`
		Stats struct {
			SRs int `json:"srs"`
		} `json:"stats"`
	}
	if err := json.Unmarshal([]byte(out), &body); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(body.Cards) != 288 {
		t.Fatalf("expected 288 cards, got %d", len(body.Cards))
	}
	if body.Stats.SRs != 7 {
		t.Errorf("expected 7 super rares, got %d", body.Stats.SRs)
	}
}

func TestPrereleaseGrid(t *testing.T) {
	isolateConfig(t)
	resetFlags(t)
	path := writeTestCatalog(t)

	out, err := run(t, "prerelease", "--catalog", path)
	if err != nil {
		t.Fatalf("prerelease: %v", err)
	}
	if !strings.Contains(out, "Prerelease pool (72)") {
		t.Errorf("missing grid title in output:\n%s", out)
	}
}

func TestExportToFile(t *testing.T) {
	isolateConfig(t)
	resetFlags(t)
	path := writeTestCatalog(t)
	outPath := filepath.Join(t.TempDir(), "pool.txt")

	if _, err := run(t, "export", "prerelease", "--catalog", path, "--out", outPath); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var n int
		var id string
		if _, err := fmt.Sscanf(line, "%dx%s", &n, &id); err != nil {
			t.Fatalf("bad decklist line %q: %v", line, err)
		}
		total += n
	}
	if total != 72 {
		t.Errorf("decklist counts add up to %d, want 72", total)
	}
}

func TestExportRejectsUnknownMode(t *testing.T) {
	isolateConfig(t)
	resetFlags(t)
	if _, err := run(t, "export", "draft", "--catalog", writeTestCatalog(t)); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestSortedByIDLeavesInputAlone(t *testing.T) {
	in := []*card.Card{{ID: "OP14-003"}, {ID: "EB04-001"}, {ID: "OP14-001"}}
	got := sortedByID(in)
	if got[0].ID != "EB04-001" || got[2].ID != "OP14-003" {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if in[0].ID != "OP14-003" {
		t.Fatal("input slice was reordered")
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("When this card is played, draw one card and trash one card.", 20)
	for _, l := range lines {
		if len(l) > 20 {
			t.Errorf("line too long: %q", l)
		}
	}
	if got := strings.Join(lines, " "); got != "When this card is played, draw one card and trash one card." {
		t.Errorf("words were lost: %q", got)
	}
	if got := wrapText("", 20); len(got) != 1 || got[0] != "" {
		t.Errorf("empty text should give one empty line, got %v", got)
	}
}

func TestFindCardImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "EB04-010_.png"), []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}
	if path, ok := findCardImage(dir, &card.Card{ID: "EB04-010*"}); !ok || filepath.Base(path) != "EB04-010_.png" {
		t.Fatalf("expected sanitized image, got %q", path)
	}
	if _, ok := findCardImage(dir, &card.Card{ID: "EB04-011"}); ok {
		t.Fatal("expected no image")
	}
	if _, ok := findCardImage("", &card.Card{ID: "EB04-010*"}); ok {
		t.Fatal("expected no image without a directory")
	}
}
