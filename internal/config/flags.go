package config

import (
	"flag"
	"os"

	"github.com/eats-health/eats/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   path of the credential store file (default from Config)
//	-d string   directory for the tracker data files (default from Config)
//	-b string   path of the BMI history CSV (default from Config)
//
// The function filters os.Args down to the flags it knows about, using
// flagx.FilterArgs, so the -c/-config flags handled by the JSON stage do not
// trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-d", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "path of the credential store file")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for tracker data files")
	fs.StringVar(&cfg.BMIFile, "b", cfg.BMIFile, "path of the BMI history file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
