// Package chat implements the interactive chat command
package chat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fjacquet/quicklog/cmd/common"
	"fjacquet/quicklog/cmd/root"
	"fjacquet/quicklog/internal/models"
	"fjacquet/quicklog/internal/recorder"

	"github.com/spf13/cobra"
)

// DryRun answers every message without writing to the ledger.
var DryRun bool

// Cmd represents the chat command
var Cmd = &cobra.Command{
	Use:   "chat",
	Short: "Type messages and have them logged",
	Long: `Read messages from standard input, one per line, classify each one, record
it in the ledger and answer the way the assistant does. Type "exit" or send
EOF to stop.

Example:
  quicklog chat
  > Coffee £3.50
  ✅ Logged expense: £3.50 for Food`,
	RunE: chatFunc,
}

func init() {
	Cmd.Flags().BoolVar(&DryRun, "dry-run", false, "Answer without recording anything")
}

// Classifier and Recorder are the parts of the container a session needs.
type Classifier interface {
	Classify(text string) models.ParsedIntent
}

type Recorder interface {
	Record(models.ParsedIntent) (string, error)
	Reply(models.ParsedIntent) string
}

// Session runs one conversation.
type Session struct {
	Classifier Classifier
	Recorder   Recorder
	DryRun     bool
	Prompt     string
}

func chatFunc(cmd *cobra.Command, args []string) error {
	app, err := root.Container()
	if err != nil {
		return err
	}
	if root.SharedFlags.NoColor {
		common.SetColor(false)
	}

	s := &Session{
		Classifier: app.GetParser(),
		Recorder:   app.GetRecorder(),
		DryRun:     DryRun,
		Prompt:     "> ",
	}
	return s.Run(cmd.InOrStdin(), cmd.OutOrStdout())
}

// Run answers every line of in until EOF or "exit".
func (s *Session) Run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, recorder.Greeting)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, s.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "exit") || strings.EqualFold(text, "quit") {
			break
		}
		fmt.Fprintln(out, s.Answer(text))
	}
	return scanner.Err()
}

// Answer classifies one message, records it unless DryRun is set, and
// returns the reply. Recording failures are reported in the reply.
func (s *Session) Answer(text string) string {
	parsed := s.Classifier.Classify(text)
	reply := s.Recorder.Reply(parsed)

	if !s.DryRun && parsed.Kind != models.KindUnknown {
		if _, err := s.Recorder.Record(parsed); err != nil {
			return common.Colorize(models.KindUnknown, fmt.Sprintf("⚠️ Could not save that: %v", err))
		}
	}
	return common.Colorize(parsed.Kind, reply)
}
