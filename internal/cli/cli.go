package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"type-introspector/internal/logging"
	"type-introspector/options"
)

// ParseArgs parses command line arguments into Config. Positional arguments
// are the package patterns to load.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	var (
		typesRaw      string
		classifyOn    bool
		membersOn     bool
		annotationsOn bool
		conversionsOn bool
		dumpOn        bool
	)

	fs := pflag.NewFlagSet("type-introspector", pflag.ContinueOnError)
	fs.StringVarP(&typesRaw, "types", "t", "", "comma-separated type names to report (default: all loaded)")
	fs.BoolVar(&classifyOn, "classify", false, "report semantic classification")
	fs.BoolVarP(&membersOn, "members", "m", false, "report the comparable member catalog")
	fs.BoolVarP(&annotationsOn, "annotations", "a", false, "report declared and inherited annotations")
	fs.BoolVar(&conversionsOn, "conversions", false, "report user-defined conversion operators")
	fs.BoolVarP(&dumpOn, "dump", "d", false, "dump raw type metadata")
	fs.StringVar(&cfg.LogFile, "log-file", "", "log file path (default: stderr only)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	cfg.Patterns = fs.Args()
	if len(cfg.Patterns) == 0 {
		return nil, fmt.Errorf("at least one package pattern is required")
	}

	cfg.Types = splitCommaList(typesRaw)
	cfg.Sections = sections(classifyOn, membersOn, annotationsOn, conversionsOn, dumpOn)

	return cfg, nil
}

// sections folds the report toggles into a section set. No toggles selects
// every report except the raw dump.
func sections(classifyOn, membersOn, annotationsOn, conversionsOn, dumpOn bool) options.SectionEnum {
	s := options.SectionNone
	if classifyOn {
		s |= options.SectionClassification
	}
	if membersOn {
		s |= options.SectionMembers
	}
	if annotationsOn {
		s |= options.SectionAnnotations
	}
	if conversionsOn {
		s |= options.SectionConversions
	}
	if dumpOn {
		s |= options.SectionDump
	}

	if s == options.SectionNone {
		return options.SectionAll &^ options.SectionDump
	}

	return s
}

func splitCommaList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}

	return out
}
