package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	litbuild "github.com/grove-tools/litbuild/internal/build"
)

var (
	srcDir     string
	targetDir  string
	pluginsDir string
	force      bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the code and docs trees from a literate source tree",
	Long: `Build reads every file under --src-dir, resolves cross-references between
literate notebooks, and writes a runnable code tree and a readable docs
tree under --target-dir.`,
	SilenceUsage: true,
	RunE:         runBuild,
}

func init() {
	registerBuildFlags(buildCmd)
	registerBuildFlags(rootCmd)
	rootCmd.RunE = runBuild
	rootCmd.AddCommand(buildCmd)
}

func registerBuildFlags(c *cobra.Command) {
	c.Flags().StringVar(&srcDir, "src-dir", "src", "source tree root")
	c.Flags().StringVar(&targetDir, "target-dir", "targets", "output directory (code/ and docs/ are created inside)")
	c.Flags().StringVar(&pluginsDir, "plugins-dir", "plugins", "plugins directory")
	c.Flags().BoolVarP(&force, "force", "f", false, "remove previous build output before building")
}

func runBuild(cmd *cobra.Command, args []string) error {
	reporter := litbuild.NewStageReporter(os.Stderr)

	cfg := litbuild.Config{
		SrcDir:     srcDir,
		TargetDir:  targetDir,
		PluginsDir: pluginsDir,
		Force:      force,
		OnProgress: reporter.Progress,
	}

	summary, err := litbuild.Run(cfg)
	if err != nil {
		reporter.Done("")
		return err
	}
	reporter.Done(color.GreenString("Done."))

	fmt.Fprintf(cmd.OutOrStdout(), "%s modules built, %s written\nCode tree: %s/code\nDocs tree: %s/docs\n",
		humanize.Comma(int64(summary.ModuleCount)), humanize.Bytes(uint64(summary.BytesWritten)), targetDir, targetDir)
	return nil
}
