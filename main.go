package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/andareed/msgbox/config"
	"github.com/andareed/msgbox/i18n"
	"github.com/andareed/msgbox/logging"
	"github.com/andareed/msgbox/prefs"
	"github.com/andareed/msgbox/theme"
)

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "config file (TOML)")
	langFlag := flag.String("lang", "", "language, e.g. en_US or zh_CN")
	modeFlag := flag.String("color-mode", "", "set and save the color mode: system, light or dark")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("msgbox: started (version %s)", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := openStore(cfg.Prefs)
	if err != nil {
		log.Fatalf("preferences: %v", err)
	}

	// the probe talks to the terminal, so it runs once before the program starts
	dark := termenv.HasDarkBackground()
	modes := theme.NewProvider(store, theme.ColorMode(cfg.UI.ColorMode),
		theme.WithDarkDetector(func() bool { return dark }))
	if *modeFlag != "" {
		mode, err := theme.ParseColorMode(*modeFlag)
		if err != nil {
			log.Fatalf("--color-mode: %v", err)
		}
		if err := modes.SetMode(mode); err != nil {
			logging.Warnf("color mode: %v", err)
		}
	}

	lang := i18n.Match(*langFlag, storedLang(store), cfg.UI.Lang)
	tr, err := i18n.New(lang)
	if err != nil {
		log.Fatalf("i18n: %v", err)
	}
	if err := store.Set(i18n.StorageKey, tr.Lang()); err != nil {
		logging.Warnf("language: %v", err)
	}

	m := newModel(cfg, store, modes, tr)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m.send = p.Send

	if _, err := p.Run(); err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
	m.cancel()
}

func openStore(c config.PrefsConfig) (*prefs.FileStore, error) {
	dir := c.Dir
	if dir == "" {
		d, err := prefs.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	s, err := prefs.OpenFile(dir)
	if err != nil {
		return nil, err
	}
	logging.Infof("preferences: %s", s.Path())
	if c.ReadOnly {
		return s.ReadOnly(), nil
	}
	return s, nil
}

func storedLang(s theme.Storage) string {
	v, _ := s.Get(i18n.StorageKey)
	return v
}
