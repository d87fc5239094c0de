package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jackal/cmd/jackal/commands"
	"go.trai.ch/jackal/internal/app"
	"go.trai.ch/jackal/internal/core/domain"
	"go.trai.ch/jackal/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type cliTestMocks struct {
	loader   *mocks.MockConfigLoader
	locator  *mocks.MockLocator
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
}

func setupCLI(t *testing.T, tc domain.Toolchain) (*commands.CLI, *bytes.Buffer, cliTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := cliTestMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		locator:  mocks.NewMockLocator(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()
	m.locator.EXPECT().Toolchain().Return(tc).Times(1)

	a := app.New(m.loader, m.locator, m.executor, m.logger)
	cli := commands.New(a)
	cli.SetConfigHook(a.SetConfigFile)

	var out bytes.Buffer
	cli.SetOut(&out)

	return cli, &out, m
}

func fullToolchain() domain.Toolchain {
	return domain.Toolchain{
		Jack: domain.NewToolLocation("/tools/jack.jar"),
		Jill: domain.NewToolLocation("/tools/jill.jar"),
	}
}

func TestCompile_Success(t *testing.T) {
	cli, out, m := setupCLI(t, fullToolchain())

	m.loader.EXPECT().Load("").Return(&domain.Config{}, nil).Times(1)

	var got domain.Command
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) ([]string, error) {
			got = cmd
			return []string{"compiled 2 files"}, nil
		},
	).Times(1)

	cli.SetArgs([]string{"compile", "--output-dex", "out", "A.java", "B.java"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, []string{
		"java", "-jar", "/tools/jack.jar",
		"--output-dex", "out",
		"A.java", "B.java",
	}, got.Args())
	assert.Contains(t, out.String(), "compiled 2 files")
}

func TestCompile_ConfigFlagReachesLoader(t *testing.T) {
	cli, _, m := setupCLI(t, fullToolchain())

	m.loader.EXPECT().Load("ci/jackal.yaml").Return(&domain.Config{}, nil).Times(1)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	cli.SetArgs([]string{"compile", "--config", "ci/jackal.yaml", "A.java"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCompile_ToolMissing(t *testing.T) {
	cli, _, m := setupCLI(t, domain.Toolchain{})

	m.loader.EXPECT().Load("").Return(&domain.Config{}, nil).Times(1)

	cli.SetArgs([]string{"compile", "A.java"})
	err := cli.Execute(context.Background())

	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestCompile_RequiresFiles(t *testing.T) {
	cli, _, _ := setupCLI(t, fullToolchain())

	cli.SetArgs([]string{"compile"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestConvert_Success(t *testing.T) {
	cli, out, m := setupCLI(t, fullToolchain())

	jar := filepath.Join(t.TempDir(), "guava.jar")
	require.NoError(t, os.WriteFile(jar, []byte("PK"), 0o644))

	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	cli.SetArgs([]string{"convert", jar})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), jar[:len(jar)-len(".jar")]+".jack")
}

func TestLocate(t *testing.T) {
	cli, out, _ := setupCLI(t, domain.Toolchain{
		Jack: domain.NewToolLocation("/tools/jack.jar"),
	})

	cli.SetArgs([]string{"locate"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "jack: /tools/jack.jar")
	assert.Contains(t, out.String(), "jill: not found")
}

func TestVersion(t *testing.T) {
	cli, out, _ := setupCLI(t, fullToolchain())

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "dev")
}
