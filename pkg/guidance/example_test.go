package guidance_test

import (
	"context"
	"fmt"

	"github.com/agentstation/sheave/pkg/fsys"
	"github.com/agentstation/sheave/pkg/guidance"
)

// Example stitches two rules into the aggregate document.
func Example() {
	f := fsys.NewMemory()
	_ = f.MkdirAll(".ai/rules", 0o755)
	_ = f.WriteFile(".ai/rules/intro.mdc", []byte("Hello"), 0o644)
	_ = f.WriteFile(".ai/rules/style.mdc", []byte("---\nalwaysApply: true\n---\nBe terse"), 0o644)

	s, err := guidance.New(f)
	if err != nil {
		fmt.Println(err)
		return
	}

	report, err := s.Run(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}

	claude, _ := f.ReadFile(".claude/CLAUDE.md")
	fmt.Print(string(claude))
	fmt.Println(report.Summary())

	// Output:
	// # Intro
	//
	// Hello
	//
	// # Style
	//
	// Be terse
	//
	// 2 copied, 1 generated, 0 removed
}

// ExampleStripMetadata shows metadata removal for stitched output.
func ExampleStripMetadata() {
	fmt.Printf("%q\n", guidance.StripMetadata("---\ndescription: Style\n---\n\nBe terse\n"))
	// Output: "Be terse"
}
