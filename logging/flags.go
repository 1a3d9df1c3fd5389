package logging

import "github.com/spf13/pflag"

// AddSeverityFlag registers a severity flag on fs. The value pointed to by
// severity supplies the default and receives the parsed result, so it can
// feed SetMinSeverity or SetMaxSeverity directly after parsing.
func AddSeverityFlag(fs *pflag.FlagSet, name string, severity *Severity, usage string) {
	fs.Var(severity, name, usage)
}

// AddSeverityFlagP is AddSeverityFlag with a shorthand letter.
func AddSeverityFlagP(fs *pflag.FlagSet, name, shorthand string, severity *Severity, usage string) {
	fs.VarP(severity, name, shorthand, usage)
}
