package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gridkit/pkg/settings"
)

type versionOutput struct {
	settings.VersionInfo `json:",inline" yaml:",inline"`
	GoVersion            string `json:"goVersion" yaml:"goVersion"`
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := versionOutput{VersionInfo: settings.VersionInformation, GoVersion: runtime.Version()}
			return writeResult(cmd, v, table(
				[]string{"FIELD", "VALUE"},
				[][]string{
					{"version", v.BuildVersion},
					{"commit", v.Commit},
					{"built", v.BuildTime},
					{"go", v.GoVersion},
				},
				nil,
			))
		},
	}
}
