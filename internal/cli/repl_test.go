package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
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
func (f *fakeExec) About() error { f.calls = append(f.calls, "about"); return nil }
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) AddFood(ctx context.Context) error { f.calls = append(f.calls, "food"); return nil }
func (f *fakeExec) FoodLog(ctx context.Context) error {
	f.calls = append(f.calls, "foodlog")
	return nil
}
func (f *fakeExec) DeleteFood(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delfood")
	f.arg = id
	return nil
}
func (f *fakeExec) ClearFood(ctx context.Context) error {
	f.calls = append(f.calls, "clearfood")
	return nil
}
func (f *fakeExec) AddSleep(ctx context.Context) error {
	f.calls = append(f.calls, "sleep")
	return nil
}
func (f *fakeExec) SleepLog(ctx context.Context) error {
	f.calls = append(f.calls, "sleeplog")
	return nil
}
func (f *fakeExec) DeleteSleep(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delsleep")
	f.arg = id
	return nil
}
func (f *fakeExec) ClearSleep(ctx context.Context) error {
	f.calls = append(f.calls, "clearsleep")
	return nil
}
func (f *fakeExec) RecordBMI(ctx context.Context) error {
	f.calls = append(f.calls, "bmi")
	return nil
}
func (f *fakeExec) BMILog(ctx context.Context) error {
	f.calls = append(f.calls, "bmilog")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"food",
		"foodlog",
		"delfood 123",
		"sleep",
		"bmi",
		"profile",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "food", "foodlog", "delfood", "sleep", "bmi", "profile", "logout"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "123" {
		t.Fatalf("delete id = %q, want %q", exec.arg, "123")
	}
}

func TestRunREPL_TrackersRequireLogin(t *testing.T) {
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("food\nsleeplog\nbmi\nprofile\nexit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	joined := strings.Join(lines, "")
	if !strings.Contains(joined, "Please login first.") {
		t.Fatalf("missing login warning in output: %q", joined)
	}
}

func TestRunREPL_NoDoubleLogin(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("register\nlogin\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("delfood\ndelsleep\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
