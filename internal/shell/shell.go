package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"paydesk/internal/domain/salary"
	"paydesk/internal/messages"
)

// ReportExporter writes a report over the given works and returns the path
// of the produced artifact.
type ReportExporter interface {
	Export(works []*salary.Work) (string, error)
}

type Options struct {
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
	Registry *salary.Registry
	Catalog  messages.Catalog
	Theme    Theme
	Logger   *slog.Logger
	Exporter ReportExporter
}

// Shell drives the interactive menu loop over an injected registry. It owns
// no global state; tests run it with scripted input and buffer outputs.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	errOut   io.Writer
	registry *salary.Registry
	cat      messages.Catalog
	theme    Theme
	log      *slog.Logger
	exporter ReportExporter
}

func New(opts Options) *Shell {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Shell{
		in:       bufio.NewScanner(opts.In),
		out:      opts.Out,
		errOut:   opts.Err,
		registry: opts.Registry,
		cat:      opts.Catalog,
		theme:    opts.Theme,
		log:      log,
		exporter: opts.Exporter,
	}
}

// Run loops over the menu until the exit command or end of input. Every
// error stays local to one interaction; only option 4 or EOF leaves the
// loop.
func (s *Shell) Run() error {
	s.println(s.theme.Title.Render(s.cat.Welcome))
	s.println(s.cat.CeilingNote)

	for {
		s.showMenu()
		line, ok := s.readLine(s.cat.PromptChoice)
		if !ok {
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "1":
			if !s.addWork() {
				return nil
			}
		case "2":
			s.printAverage()
		case "3":
			s.listWorks()
		case "4":
			s.println(s.cat.Farewell)
			return nil
		case "5":
			s.exportReport()
		default:
			s.errorf("%s", s.cat.InvalidChoice)
		}
	}
}

func (s *Shell) showMenu() {
	s.println(s.theme.Title.Render(s.cat.MenuHeader))
	s.println(s.cat.MenuAdd)
	s.println(s.cat.MenuAverage)
	s.println(s.cat.MenuList)
	s.println(s.cat.MenuExit)
	s.println(s.cat.MenuExport)
	s.println(s.cat.MenuFooter)
}

// addWork runs the add flow. It reports false only when input ended, so the
// caller can unwind; abandoned adds return true with the registry unchanged.
func (s *Shell) addWork() bool {
	name, ok := s.readNonEmpty(s.cat.PromptName)
	if !ok {
		return false
	}
	base, ok := s.readFloat(s.cat.PromptBase)
	if !ok {
		return false
	}

	s.println(s.cat.PaymentTypeHeader)
	s.println(s.cat.PaymentTypeBasic)
	s.println(s.cat.PaymentTypeBonus)
	typeChoice, ok := s.readInt(s.cat.PromptPaymentType)
	if !ok {
		return false
	}

	var (
		work      *salary.Work
		err       error
		addedFmt  string
		withBonus bool
	)
	switch typeChoice {
	case 1:
		work, err = salary.NewSimpleWork(name, base)
		addedFmt = s.cat.AddedWorkFmt
	case 2:
		percent, ok := s.readFloat(s.cat.PromptBonus)
		if !ok {
			return false
		}
		work, err = salary.NewBonusWork(name, base, percent)
		addedFmt = s.cat.AddedBonusWorkFmt
		withBonus = true
	default:
		s.errorf("%s", s.cat.InvalidPaymentType)
		return true
	}

	if err != nil {
		s.warnf(s.cat.WarnFmt, err)
		s.log.Info("shell.add_rejected", "name", name, "error", err.Error())
		return true
	}

	s.registry.Add(work)
	s.successf(addedFmt, work.Name())
	s.log.Info("shell.work_added",
		"id", work.ID().String(),
		"name", work.Name(),
		"salary", work.Salary(),
		"bonus", withBonus,
	)
	return true
}

func (s *Shell) printAverage() {
	avg, err := s.registry.AverageSalary()
	if err != nil {
		if errors.Is(err, salary.ErrNoWorks) {
			s.warnf("%s", s.cat.NoWorks)
			return
		}
		s.warnf(s.cat.WarnFmt, err)
		return
	}
	s.successf(s.cat.AverageFmt, avg)
}

func (s *Shell) listWorks() {
	works := s.registry.Works()
	if len(works) == 0 {
		// An empty list is a normal state, not a fault.
		s.println(s.cat.ListEmpty)
		return
	}

	s.println(s.theme.Title.Render(s.cat.ListHeader))
	for i, w := range works {
		line := fmt.Sprintf(s.cat.WorkLineFmt,
			i+1, w.Name(), w.Salary(), w.BaseAmount(), messages.DescribeStrategy(s.cat, w.Strategy()))
		s.println(s.theme.Item.Render(line))
	}
}

func (s *Shell) exportReport() {
	path, err := s.exporter.Export(s.registry.Works())
	if err != nil {
		if errors.Is(err, salary.ErrNoWorks) {
			s.warnf("%s", s.cat.NoWorks)
			return
		}
		s.warnf(s.cat.WarnFmt, err)
		s.log.Error("shell.report_failed", "error", err.Error())
		return
	}
	s.successf(s.cat.ReportSavedFmt, path)
	s.log.Info("shell.report_exported", "path", path)
}

// readLine prints the prompt and reads one raw line. ok is false once input
// is exhausted.
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) readNonEmpty(prompt string) (string, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return "", false
		}
		if strings.TrimSpace(line) != "" {
			return line, true
		}
		s.errorf("%s", s.cat.NeedNonEmpty)
	}
}

func (s *Shell) readFloat(prompt string) (float64, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil {
			return value, true
		}
		s.errorf("%s", s.cat.NeedNumber)
	}
}

func (s *Shell) readInt(prompt string) (int, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return value, true
		}
		s.errorf("%s", s.cat.NeedInteger)
	}
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Shell) successf(format string, args ...any) {
	fmt.Fprint(s.out, s.theme.Success.Render(fmt.Sprintf(format, args...)))
	fmt.Fprintln(s.out)
}

func (s *Shell) warnf(format string, args ...any) {
	fmt.Fprint(s.errOut, s.theme.Warning.Render(fmt.Sprintf(format, args...)))
	fmt.Fprintln(s.errOut)
}

func (s *Shell) errorf(format string, args ...any) {
	fmt.Fprint(s.errOut, s.theme.Error.Render(fmt.Sprintf(format, args...)))
	fmt.Fprintln(s.errOut)
}
