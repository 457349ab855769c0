package picker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/kevindurb/datadir-picker/internal/config"
	"github.com/kevindurb/datadir-picker/internal/logger"
	"github.com/kevindurb/datadir-picker/internal/probe"
)

// ErrCancelled is returned when the user aborts the selection session.
var ErrCancelled = errors.New("data directory selection cancelled")

// Picker drives the data directory selection flow: resolve override order,
// run the interactive session when needed, create the chosen directory and
// persist the choice for future runs.
type Picker struct {
	cfg *config.Config
	log *logger.Logger
	in  *bufio.Reader
	out io.Writer
}

func New(cfg *config.Config, log *logger.Logger) *Picker {
	return &Picker{
		cfg: cfg,
		log: log,
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// Run resolves the data directory. Precedence: command-line override,
// previously saved choice, platform default. The interactive session only
// runs when the resolved directory does not exist yet or when the user
// explicitly asked to choose.
func (p *Picker) Run() (string, error) {
	// Command-line override bypasses picking entirely.
	if p.cfg.DataDir != "" {
		if err := os.MkdirAll(p.cfg.DataDir, 0750); err != nil {
			return "", fmt.Errorf("failed to create data directory: %w", err)
		}
		return p.cfg.DataDir, nil
	}

	dataDir := DefaultDataDir(p.cfg.AppName)
	if saved := viper.GetString("data_dir"); saved != "" {
		dataDir = saved
	}

	if dirExists(dataDir) && !p.cfg.ChooseDataDir {
		return dataDir, nil
	}

	if p.cfg.NonInteractive {
		if err := os.MkdirAll(dataDir, 0750); err != nil {
			return "", fmt.Errorf("failed to create data directory: %w", err)
		}
		p.saveChoice(dataDir)
		return dataDir, nil
	}

	for {
		chosen, err := p.session(dataDir)
		if err != nil {
			return "", err
		}
		if err := os.MkdirAll(chosen, 0750); err != nil {
			if p.log != nil {
				p.log.Error(fmt.Sprintf("Specified data directory %q can not be created: %v", chosen, err))
			}
			// Back to the selection screen
			dataDir = chosen
			continue
		}
		p.saveChoice(chosen)
		return chosen, nil
	}
}

// session prompts for paths until the user confirms one that checked out.
// Each entered path is handed to the background checker; confirmation is
// only offered once the check for the current path has come back OK.
func (p *Picker) session(initial string) (string, error) {
	results := make(chan probe.Result, 1)
	checker := probe.NewChecker(func(r probe.Result) { results <- r })
	defer checker.Close()

	candidate := initial

	for {
		fmt.Fprintf(p.out, "Data directory [%s]: ", candidate)
		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return "", ErrCancelled
		}

		switch input := strings.TrimSpace(line); input {
		case "q", "quit":
			return "", ErrCancelled
		case "":
			// keep the current candidate
		default:
			candidate = input
		}

		checker.RequestCheck(candidate)
		res := <-results
		p.renderStatus(candidate, res)

		if res.Status != probe.StatusOK {
			continue
		}

		ok, err := p.confirm()
		if err != nil {
			return "", err
		}
		if ok {
			return candidate, nil
		}
	}
}

func (p *Picker) renderStatus(path string, res probe.Result) {
	if res.Status == probe.StatusError {
		color.New(color.FgRed).Fprintf(p.out, "Error: %s\n", res.Message)
		return
	}

	fmt.Fprintf(p.out, "%s\n", res.Message)

	free := fmt.Sprintf("%d GB of free space available", res.AvailableBytes/config.GB)
	if res.AvailableBytes < p.cfg.RecommendedFreeBytes {
		color.New(color.FgYellow).Fprintf(p.out, "%s (of %d GB recommended).\n",
			free, p.cfg.RecommendedFreeBytes/config.GB)
	} else {
		fmt.Fprintf(p.out, "%s.\n", free)
	}

	if vol, err := probe.Volume(path); err == nil {
		fmt.Fprintf(p.out, "Volume %s (%s), %.1f%% used.\n",
			vol.Mountpoint, vol.Fstype, vol.UsedPercent)
	}
}

func (p *Picker) confirm() (bool, error) {
	fmt.Fprint(p.out, "Use this directory? [Y/n/q]: ")
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false, ErrCancelled
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true, nil
	case "q", "quit":
		return false, ErrCancelled
	default:
		return false, nil
	}
}

// saveChoice persists the selection so the next run can skip the dialog.
// Best effort: a failure to write the config is reported but not fatal.
func (p *Picker) saveChoice(dir string) {
	viper.Set("data_dir", dir)

	var err error
	if viper.ConfigFileUsed() != "" {
		err = viper.WriteConfig()
	} else if home, herr := os.UserHomeDir(); herr == nil {
		err = viper.WriteConfigAs(filepath.Join(home, "."+p.cfg.AppName+".yaml"))
	} else {
		err = herr
	}

	if err != nil && p.log != nil {
		p.log.Warn(fmt.Sprintf("Could not save data directory choice: %v", err))
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
