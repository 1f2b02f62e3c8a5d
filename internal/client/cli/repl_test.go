package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Groups(ctx context.Context) error { f.calls = append(f.calls, "groups"); return nil }
func (f *fakeExec) Expenses(ctx context.Context, groupID string) error {
	f.calls = append(f.calls, "expenses "+groupID)
	return nil
}
func (f *fakeExec) Balances(ctx context.Context, groupID string) error {
	f.calls = append(f.calls, "balances "+groupID)
	return nil
}
func (f *fakeExec) Voice(ctx context.Context, groupID, path string) error {
	f.calls = append(f.calls, "voice "+groupID+" "+path)
	return nil
}

func silencePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrint(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"groups",
		"login",
		"help",
		"whoami",
		"groups",
		"expenses g1",
		"balances g1",
		"voice g1 lunch.wav",
		"logout",
		"foobar",
		"exit",
		"login",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	want := []string{"login", "whoami", "groups", "expenses g1", "balances g1", "voice g1 lunch.wav", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	lines := silencePrint(t)

	input := strings.NewReader("expenses\nbalances a b\nvoice g1\nquit\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	joined := strings.Join(*lines, "\n")
	for _, want := range []string{"Usage: expenses <groupId>", "Usage: balances <groupId>", "Usage: voice <groupId> <file.wav>", "Bye!"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in output:\n%s", want, joined)
		}
	}
}

func TestRunREPL_GuardsAuthenticatedCommands(t *testing.T) {
	lines := silencePrint(t)

	input := strings.NewReader("whoami\nlogout\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "(guest)" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if !strings.Contains(strings.Join(*lines, "\n"), "Please login first") {
		t.Fatalf("expected login hint, got %v", *lines)
	}
}
