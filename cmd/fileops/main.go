package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"gopkg.in/ini.v1"

	"github.com/steelcutops/fileops/fileops"
)

var log = logrus.New()

type flags struct {
	BatchFilePath string
	Debug         bool
	Deletes       pathsValue
	DestDir       string
	LogFileName   string
	MovePath      string
	RenamePath    string
	RenameTo      string
	Yes           bool
}

type pathsValue []string

func (p *pathsValue) String() string {
	return strings.Join(*p, ",")
}

func (p *pathsValue) Set(value string) error {
	*p = append(*p, value)
	return nil
}

const (
	opDelete = "delete"
	opMove   = "move"
	opRename = "rename"
)

// operation is a single filesystem action, collected from flags or from a
// batch file.
type operation struct {
	Kind   string
	Source string
	Target string // destination directory for move, new name for rename
}

func parseFlags() *flags {
	f := &flags{}
	flag.BoolVar(&f.Debug, "debug", false, "Enable debug log level")
	flag.BoolVar(&f.Yes, "yes", false, "Skip interactive delete confirmation")
	flag.StringVar(&f.BatchFilePath, "ini", "", "Path to INI file with batched operations")
	flag.StringVar(&f.LogFileName, "log", "", "Log file name (default stderr)")
	flag.StringVar(&f.MovePath, "move", "", "Move the file at this path into the -dest directory")
	flag.StringVar(&f.DestDir, "dest", "", "Destination directory for -move")
	flag.StringVar(&f.RenamePath, "rename", "", "Rename the file at this path to the -to name")
	flag.StringVar(&f.RenameTo, "to", "", "New name for -rename")
	flag.Var(&f.Deletes, "delete", "Delete the file at this path (repeatable)")
	flag.Parse()

	return f
}

func configureLogging(f *flags) {
	if f.Debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if f.LogFileName != "" {
		file, err := os.OpenFile(f.LogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Warnf("Could not open log file %s, logging to stderr: %v", f.LogFileName, err)
			return
		}
		log.SetOutput(file)
	}
}

func operationsFromFlags(f *flags) ([]operation, error) {
	var ops []operation
	for _, path := range f.Deletes {
		ops = append(ops, operation{Kind: opDelete, Source: path})
	}
	if f.MovePath != "" {
		if f.DestDir == "" {
			return nil, errors.New("-move requires -dest")
		}
		ops = append(ops, operation{Kind: opMove, Source: f.MovePath, Target: f.DestDir})
	}
	if f.RenamePath != "" {
		if f.RenameTo == "" {
			return nil, errors.New("-rename requires -to")
		}
		ops = append(ops, operation{Kind: opRename, Source: f.RenamePath, Target: f.RenameTo})
	}
	return ops, nil
}

// readBatchFile parses an INI batch file. [delete] entries are bare paths;
// [move] and [rename] entries map a source path to a destination directory
// or a new name respectively.
func readBatchFile(filePath string) ([]operation, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{AllowBooleanKeys: true}, filePath)
	if err != nil {
		return nil, err
	}

	var ops []operation
	for _, section := range cfg.Sections() {
		switch section.Name() {
		case ini.DefaultSection:
			continue
		case opDelete:
			for _, key := range section.Keys() {
				ops = append(ops, operation{Kind: opDelete, Source: key.Name()})
			}
		case opMove, opRename:
			for _, key := range section.Keys() {
				ops = append(ops, operation{Kind: section.Name(), Source: key.Name(), Target: key.String()})
			}
		default:
			return nil, fmt.Errorf("unknown section %q in %s", section.Name(), filePath)
		}
	}
	return ops, nil
}

func runOperations(ops []operation, confirm func(path string) bool) error {
	var result *multierror.Error
	for _, op := range ops {
		if err := runOperation(op, confirm); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func runOperation(op operation, confirm func(path string) bool) error {
	switch op.Kind {
	case opDelete:
		if !confirm(op.Source) {
			log.Infof("Skipped delete of %s", op.Source)
			return nil
		}
		f, err := fileops.NewPath(op.Source)
		if err != nil {
			return err
		}
		if !f.Delete() {
			return fmt.Errorf("%s was not deleted", f)
		}
		log.Debugf("Deleted %s", f)
		return nil
	case opMove:
		f, err := fileops.NewPath(op.Source)
		if err != nil {
			return err
		}
		if _, err := f.MoveToPath(op.Target); err != nil {
			return err
		}
		log.Debugf("Moved %s into %s", f, op.Target)
		return nil
	case opRename:
		f, err := fileops.NewPath(op.Source)
		if err != nil {
			return err
		}
		if !f.Rename(op.Target) {
			return fmt.Errorf("could not rename %s to %s", f, op.Target)
		}
		log.Debugf("Renamed %s to %s", f, op.Target)
		return nil
	default:
		return fmt.Errorf("unknown operation %q", op.Kind)
	}
}

// confirmDelete returns the confirmation hook for deletes. With -yes, or
// when stdin is not a terminal, every delete is confirmed.
func confirmDelete(f *flags) func(path string) bool {
	if f.Yes || !term.IsTerminal(int(os.Stdin.Fd())) {
		return func(string) bool { return true }
	}

	reader := bufio.NewReader(os.Stdin)
	return func(path string) bool {
		fmt.Fprintf(os.Stderr, "Delete %s? [y/N] ", path)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

func main() {
	f := parseFlags()
	configureLogging(f)

	ops, err := operationsFromFlags(f)
	if err != nil {
		log.Fatal(err)
	}
	if f.BatchFilePath != "" {
		batch, err := readBatchFile(f.BatchFilePath)
		if err != nil {
			log.Fatalf("Could not read batch file: %v", err)
		}
		ops = append(ops, batch...)
	}
	if len(ops) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := runOperations(ops, confirmDelete(f)); err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, opErr := range merr.Errors {
				log.Error(opErr)
			}
		} else {
			log.Error(err)
		}
		os.Exit(1)
	}
}
