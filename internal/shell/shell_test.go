package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"paydesk/internal/domain/salary"
	"paydesk/internal/messages"
)

type fakeExporter struct {
	path string
	err  error
	got  []*salary.Work
}

func (f *fakeExporter) Export(works []*salary.Work) (string, error) {
	f.got = works
	if f.err != nil {
		return "", f.err
	}
	if len(works) == 0 {
		return "", salary.ErrNoWorks
	}
	return f.path, nil
}

func runShell(t *testing.T, input string, exporter ReportExporter) (stdout, stderr string, reg *salary.Registry) {
	t.Helper()
	reg = salary.NewRegistry()
	var out, errOut bytes.Buffer
	sh := New(Options{
		In:       strings.NewReader(input),
		Out:      &out,
		Err:      &errOut,
		Registry: reg,
		Catalog:  messages.English(),
		Theme:    PlainTheme(),
		Exporter: exporter,
	})
	if err := sh.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String(), errOut.String(), reg
}

func TestExitCommand(t *testing.T) {
	stdout, stderr, _ := runShell(t, "4\n", nil)
	if !strings.Contains(stdout, "Goodbye") {
		t.Fatalf("expected farewell, got %q", stdout)
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr, got %q", stderr)
	}
}

func TestMenuChoiceIsTrimmed(t *testing.T) {
	stdout, _, _ := runShell(t, "  4  \n", nil)
	if !strings.Contains(stdout, "Goodbye") {
		t.Fatalf("expected farewell, got %q", stdout)
	}
}

func TestEndOfInputLeavesLoop(t *testing.T) {
	stdout, _, _ := runShell(t, "", nil)
	if strings.Contains(stdout, "Goodbye") {
		t.Fatal("expected no farewell on EOF")
	}
	if !strings.Contains(stdout, "MENU") {
		t.Fatalf("expected the menu to be shown once, got %q", stdout)
	}
}

func TestInvalidChoice(t *testing.T) {
	_, stderr, _ := runShell(t, "9\n4\n", nil)
	if !strings.Contains(stderr, "Invalid choice") {
		t.Fatalf("expected invalid choice message, got %q", stderr)
	}
}

func TestAddSimpleWorkAndAverage(t *testing.T) {
	stdout, _, reg := runShell(t, "1\nManager\n500000\n1\n2\n4\n", nil)
	if !strings.Contains(stdout, "Added work type: Manager") {
		t.Fatalf("expected add confirmation, got %q", stdout)
	}
	if !strings.Contains(stdout, "Average salary across all work types: 500000.00") {
		t.Fatalf("expected average output, got %q", stdout)
	}
	if reg.Count() != 1 {
		t.Fatalf("expected 1 registered work, got %d", reg.Count())
	}
}

func TestAddBonusWorkAndAverage(t *testing.T) {
	input := "1\nManager\n500000\n1\n1\nSales\n400000\n2\n50\n2\n4\n"
	stdout, _, reg := runShell(t, input, nil)
	if !strings.Contains(stdout, "Added work type with bonus: Sales") {
		t.Fatalf("expected bonus add confirmation, got %q", stdout)
	}
	if !strings.Contains(stdout, "Average salary across all work types: 550000.00") {
		t.Fatalf("expected average 550000.00, got %q", stdout)
	}
	if reg.Count() != 2 {
		t.Fatalf("expected 2 registered works, got %d", reg.Count())
	}
}

func TestRepromptsOnMalformedNumber(t *testing.T) {
	_, stderr, reg := runShell(t, "1\nDev\nabc\n100000\n1\n4\n", nil)
	if !strings.Contains(stderr, "valid number") {
		t.Fatalf("expected number re-prompt message, got %q", stderr)
	}
	if reg.Count() != 1 {
		t.Fatalf("expected the add to succeed after re-prompt, got %d works", reg.Count())
	}
}

func TestRepromptsOnEmptyName(t *testing.T) {
	_, stderr, reg := runShell(t, "1\n\nDev\n100000\n1\n4\n", nil)
	if !strings.Contains(stderr, "non-empty") {
		t.Fatalf("expected non-empty re-prompt message, got %q", stderr)
	}
	if reg.Count() != 1 {
		t.Fatalf("expected the add to succeed after re-prompt, got %d works", reg.Count())
	}
}

func TestInvalidPaymentTypeAbandonsAdd(t *testing.T) {
	_, stderr, reg := runShell(t, "1\nDev\n100000\n3\n4\n", nil)
	if !strings.Contains(stderr, "Invalid payment type") {
		t.Fatalf("expected payment type message, got %q", stderr)
	}
	if reg.Count() != 0 {
		t.Fatalf("expected no registered works, got %d", reg.Count())
	}
}

func TestCeilingViolationAbandonsAdd(t *testing.T) {
	_, stderr, reg := runShell(t, "1\nExec\n900000\n2\n50\n4\n", nil)
	if !strings.Contains(stderr, "exceeds maximum allowed amount") {
		t.Fatalf("expected ceiling warning, got %q", stderr)
	}
	if reg.Count() != 0 {
		t.Fatalf("expected no registered works, got %d", reg.Count())
	}
}

func TestBonusOutOfRangeAbandonsAdd(t *testing.T) {
	_, stderr, reg := runShell(t, "1\nDev\n100000\n2\n300\n4\n", nil)
	if !strings.Contains(stderr, "bonus percentage") {
		t.Fatalf("expected bonus range warning, got %q", stderr)
	}
	if reg.Count() != 0 {
		t.Fatalf("expected no registered works, got %d", reg.Count())
	}
}

func TestAverageOnEmptyRegistryWarns(t *testing.T) {
	stdout, stderr, _ := runShell(t, "2\n4\n", nil)
	if !strings.Contains(stderr, "No work types") {
		t.Fatalf("expected empty registry warning, got %q", stderr)
	}
	if strings.Contains(stdout, "Average salary") {
		t.Fatalf("expected no average output, got %q", stdout)
	}
}

func TestListEmptyRegistry(t *testing.T) {
	stdout, stderr, _ := runShell(t, "3\n4\n", nil)
	if !strings.Contains(stdout, "The work list is empty.") {
		t.Fatalf("expected empty list message on stdout, got %q", stdout)
	}
	if stderr != "" {
		t.Fatalf("an empty list is not an error, got %q", stderr)
	}
}

func TestListWorks(t *testing.T) {
	input := "1\nManager\n500000\n1\n1\nSales\n400000\n2\n50\n3\n4\n"
	stdout, _, _ := runShell(t, input, nil)
	if !strings.Contains(stdout, "1. Manager: 500000.00 (base: 500000.00, base pay)") {
		t.Fatalf("expected first list line, got %q", stdout)
	}
	if !strings.Contains(stdout, "2. Sales: 600000.00 (base: 400000.00, 50% bonus)") {
		t.Fatalf("expected second list line, got %q", stdout)
	}
}

func TestExportReport(t *testing.T) {
	exporter := &fakeExporter{path: "storage/reports/out.pdf"}
	stdout, _, _ := runShell(t, "1\nManager\n500000\n1\n5\n4\n", exporter)
	if !strings.Contains(stdout, "Salary report saved to storage/reports/out.pdf") {
		t.Fatalf("expected export confirmation, got %q", stdout)
	}
	if len(exporter.got) != 1 {
		t.Fatalf("expected exporter to receive 1 work, got %d", len(exporter.got))
	}
}

func TestExportEmptyRegistryWarns(t *testing.T) {
	exporter := &fakeExporter{path: "unused.pdf"}
	_, stderr, _ := runShell(t, "5\n4\n", exporter)
	if !strings.Contains(stderr, "No work types") {
		t.Fatalf("expected empty registry warning, got %q", stderr)
	}
}

func TestExportFailureIsWarned(t *testing.T) {
	exporter := &fakeExporter{err: errors.New("disk full")}
	_, stderr, _ := runShell(t, "1\nManager\n500000\n1\n5\n4\n", exporter)
	if !strings.Contains(stderr, "disk full") {
		t.Fatalf("expected export failure warning, got %q", stderr)
	}
}

func TestRussianCatalog(t *testing.T) {
	reg := salary.NewRegistry()
	var out, errOut bytes.Buffer
	sh := New(Options{
		In:       strings.NewReader("4\n"),
		Out:      &out,
		Err:      &errOut,
		Registry: reg,
		Catalog:  messages.Russian(),
		Theme:    PlainTheme(),
	})
	if err := sh.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "До свидания") {
		t.Fatalf("expected Russian farewell, got %q", out.String())
	}
}
