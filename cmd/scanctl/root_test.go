package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-iterscan/logger"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "scanctl", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup(logFileFlagName))
	assert.NotNil(t, cmd.PersistentFlags().Lookup(verboseFlagName))
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"run", "test", "stats", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	out, err := execute(t, newRootCmd())

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "YAML plans")
}

func TestRootCmd_LogsToFile(t *testing.T) {
	t.Cleanup(func() { logger.SetLogger(quiet) })

	logPath := filepath.Join(t.TempDir(), "scanctl.log")
	path := writePlan(t, "linear.yaml", linearPlan)

	out, err := execute(t, rootCmd, "--log-file", logPath, "-v", "test", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 steps")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "reached end of test scan")
}

func TestConfigureLogger(t *testing.T) {
	t.Cleanup(func() { logger.SetLogger(quiet) })

	logPath := filepath.Join(t.TempDir(), "debug.log")
	closer := configureLogger(logPath, true)
	logger.Debug("motor moved", "axis", "x")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "motor moved")

	closer = configureLogger(logPath, false)
	defer closer.Close()
	assert.Equal(t, logger.InfoLevel, logger.GetLogger().Level())
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, defaultLogMaxSize, viper.GetInt(logMaxSizeKey))
	assert.Equal(t, defaultLogMaxBackups, viper.GetInt(logMaxBackupsKey))
	assert.Equal(t, defaultLogLevel, viper.GetString(logLevelKey))
}

func TestBindFlagToConfig(t *testing.T) {
	cmd := &cobra.Command{Use: "probe"}
	cmd.Flags().Int("probe-steps", 3, "")
	bindFlagToConfig(cmd.Flags().Lookup("probe-steps"), "probe.steps")

	require.NoError(t, cmd.Flags().Set("probe-steps", "7"))
	assert.Equal(t, 7, viper.GetInt("probe.steps"))
}

func TestSetupConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		write   bool
		wantErr bool
		wantMax int
	}{
		{"missing file", "", false, false, defaultStatsMaxSteps},
		{"valid file", "stats:\n  max_steps: 42\n", true, false, 42},
		{"malformed file", "stats: [max_steps\n", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.write {
				require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(tt.content), 0o600))
			}
			t.Chdir(dir)

			v := viper.New()
			err := setupConfig(v)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), configFileName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMax, v.GetInt(statsMaxStepsKey))
		})
	}
}

func TestRootCmd_ReportsConfigError(t *testing.T) {
	orig := configErr
	t.Cleanup(func() { configErr = orig })
	configErr = errors.New("read config scanctl.yaml: bad indentation")

	_, err := execute(t, newRootCmd())
	require.ErrorIs(t, err, configErr)
}
