package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jackal/internal/app"
	"go.trai.ch/jackal/internal/core/domain"
	"go.trai.ch/jackal/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appTestMocks struct {
	loader   *mocks.MockConfigLoader
	locator  *mocks.MockLocator
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
}

func setupAppTest(t *testing.T, tc domain.Toolchain) (*app.App, appTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		locator:  mocks.NewMockLocator(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	// Resolution happens exactly once, at construction.
	m.locator.EXPECT().Toolchain().Return(tc).Times(1)

	return app.New(m.loader, m.locator, m.executor, m.logger), m
}

func fullToolchain() domain.Toolchain {
	return domain.Toolchain{
		Jack: domain.NewToolLocation("/tools/jack.jar"),
		Jill: domain.NewToolLocation("/tools/jill.jar"),
	}
}

func TestApp_New_WarnsWhenToolsUnresolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	locator := mocks.NewMockLocator(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	locator.EXPECT().Toolchain().Return(domain.Toolchain{}).Times(1)
	logger.EXPECT().Warn("jack.jar not found, compile will not work").Times(1)
	logger.EXPECT().Warn("jill.jar not found, convert will not work").Times(1)

	app.New(loader, locator, executor, logger)
}

func TestApp_New_SilentWhenToolchainComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	locator := mocks.NewMockLocator(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	// No Warn expectation: a resolved toolchain must not log anything.
	locator.EXPECT().Toolchain().Return(fullToolchain()).Times(1)

	app.New(loader, locator, executor, logger)
}

func TestApp_Compile_MergesConfigAndOptions(t *testing.T) {
	a, m := setupAppTest(t, fullToolchain())

	m.loader.EXPECT().Load("").Return(&domain.Config{
		OutputDex: "out/config",
		Imports:   []string{"libs/a.jack"},
	}, nil)

	var got domain.Command
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) ([]string, error) {
			got = cmd
			return []string{"done"}, nil
		},
	)

	lines, err := a.Compile(context.Background(), []string{"A.java", "B.java"}, app.CompileOptions{
		OutputDex: "out/flag",
		Imports:   []string{"libs/b.jack"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"done"}, lines)
	assert.Equal(t, []string{
		"java", "-jar", "/tools/jack.jar",
		"--import", "libs/a.jack",
		"--output-dex", "out/config",
		"--import", "libs/b.jack",
		"--output-dex", "out/flag",
		"A.java", "B.java",
	}, got.Args())
}

func TestApp_Compile_FailsWhenJackUnresolved(t *testing.T) {
	a, m := setupAppTest(t, domain.Toolchain{})

	m.loader.EXPECT().Load("").Return(&domain.Config{}, nil)

	_, err := a.Compile(context.Background(), []string{"A.java"}, app.CompileOptions{})
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestApp_Compile_UsesConfiguredFile(t *testing.T) {
	a, m := setupAppTest(t, fullToolchain())
	a.SetConfigFile("ci/jackal.yaml")

	m.loader.EXPECT().Load("ci/jackal.yaml").Return(&domain.Config{}, nil)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := a.Compile(context.Background(), []string{"A.java"}, app.CompileOptions{})
	require.NoError(t, err)
}

func TestApp_Compile_NoInputFiles(t *testing.T) {
	a, _ := setupAppTest(t, fullToolchain())

	_, err := a.Compile(context.Background(), nil, app.CompileOptions{})
	require.Error(t, err)
}

func TestApp_Convert_PreservesInputOrder(t *testing.T) {
	a, m := setupAppTest(t, fullToolchain())

	dir := t.TempDir()
	jars := make([]string, 3)
	for i, name := range []string{"a.jar", "b.jar", "c.jar"} {
		jars[i] = filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(jars[i], []byte("PK"), 0o644))
	}

	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	results, err := a.Convert(context.Background(), jars)
	require.NoError(t, err)

	want := make([]string, 3)
	for i, jar := range jars {
		want[i] = jar[:len(jar)-len(".jar")] + ".jack"
	}
	assert.Equal(t, want, results)
}

func TestApp_Convert_PropagatesFailure(t *testing.T) {
	a, m := setupAppTest(t, fullToolchain())

	jar := filepath.Join(t.TempDir(), "broken.jar")
	require.NoError(t, os.WriteFile(jar, []byte("PK"), 0o644))

	wantErr := &domain.CommandError{Args: []string{"java"}}
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, wantErr)

	_, err := a.Convert(context.Background(), []string{jar})

	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Same(t, wantErr, cmdErr)
}

func TestApp_Toolchain(t *testing.T) {
	a, _ := setupAppTest(t, fullToolchain())
	assert.Equal(t, "/tools/jack.jar", a.Toolchain().Jack.Path())
	assert.Equal(t, "/tools/jill.jar", a.Toolchain().Jill.Path())
}
