package schematic

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/jakoblorz/lintkit/internal/filesystem"
	"github.com/jakoblorz/lintkit/internal/tasks"
	"github.com/jakoblorz/lintkit/internal/workspace"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func detectWorkspace(t *testing.T, fs *filesystem.MockFileSystem) *workspace.Workspace {
	t.Helper()

	ws := workspace.New(fs)
	require.NoError(t, ws.Detect())
	return ws
}

func TestRun_SingleProjectDefaults(t *testing.T) {
	fs := workspace.NewBuilder("/workspace").
		AddProject("web", "apps/web", "").
		AddManifest(`{"name": "ws", "devDependencies": {"a": "1.0.0"}}`).
		Build()
	ws := detectWorkspace(t, fs)

	runner := tasks.NewMockRunner()
	var buf bytes.Buffer

	pipeline := NewConfigureLinters(fs, runner, &buf)
	require.NoError(t, pipeline.Run(context.Background(), ws, Options{}))

	// devDependencies merged, pre-existing entries untouched
	data, err := fs.ReadFile("/workspace/package.json")
	require.NoError(t, err)
	require.Equal(t, "1.0.0", gjson.GetBytes(data, "devDependencies.a").String())
	require.Equal(t, "^1.18.2", gjson.GetBytes(data, "devDependencies.prettier").String())
	require.Equal(t, "~5.18.0", gjson.GetBytes(data, "devDependencies.tslint").String())
	require.Equal(t, "^5.1.0", gjson.GetBytes(data, "devDependencies.codelyzer").String())
	require.Equal(t, "^10.1.0", gjson.GetBytes(data, "devDependencies.stylelint").String())

	// devDependencies sorted lexicographically
	var keys []string
	gjson.GetBytes(data, "devDependencies").ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	require.True(t, sort.StringsAreSorted(keys), "devDependencies keys not sorted: %v", keys)

	// root lint config uses the default prefix
	lintData, err := fs.ReadFile("/workspace/tslint.json")
	require.NoError(t, err)
	require.Equal(t, "app", gjson.GetBytes(lintData, "rules.component-selector.2").String())
	require.Equal(t, "app", gjson.GetBytes(lintData, "rules.directive-selector.2").String())

	// per-project configs
	require.True(t, fs.Exists("/workspace/apps/web/.prettierrc"))
	require.True(t, fs.Exists("/workspace/apps/web/.stylelintrc"))

	// baseline schematic first, install scheduled last
	require.Equal(t, []string{
		"schematic lint-baseline --project web",
		"schedule install",
	}, runner.Calls)
	require.Equal(t, 1, runner.PendingInstalls())
}

func TestRun_ExplicitProjectWithPrefix(t *testing.T) {
	fs := workspace.NewBuilder("/workspace").
		AddProject("web", "apps/web", "").
		AddProject("admin", "apps/admin", "adm").
		Build()
	ws := detectWorkspace(t, fs)

	runner := tasks.NewMockRunner()
	var buf bytes.Buffer

	pipeline := NewConfigureLinters(fs, runner, &buf)
	require.NoError(t, pipeline.Run(context.Background(), ws, Options{Project: "admin"}))

	lintData, err := fs.ReadFile("/workspace/tslint.json")
	require.NoError(t, err)
	require.Equal(t, "adm", gjson.GetBytes(lintData, "rules.component-selector.2").String())

	require.True(t, fs.Exists("/workspace/apps/admin/.prettierrc"))
	require.True(t, fs.Exists("/workspace/apps/admin/.stylelintrc"))
	require.False(t, fs.Exists("/workspace/apps/web/.prettierrc"))
}

func TestRun_AmbiguousProjectAbortsBeforeMutation(t *testing.T) {
	fs := workspace.NewBuilder("/workspace").
		AddProject("web", "apps/web", "").
		AddProject("admin", "apps/admin", "").
		Build()
	ws := detectWorkspace(t, fs)

	runner := tasks.NewMockRunner()
	var buf bytes.Buffer

	pipeline := NewConfigureLinters(fs, runner, &buf)
	err := pipeline.Run(context.Background(), ws, Options{})
	require.Error(t, err)

	var ambiguous *workspace.AmbiguousProjectError
	require.True(t, errors.As(err, &ambiguous))

	require.Empty(t, runner.Calls)
	require.False(t, fs.Exists("/workspace/package.json"))
	require.False(t, fs.Exists("/workspace/tslint.json"))
}

func TestRun_UnknownProject(t *testing.T) {
	fs := workspace.NewBuilder("/workspace").
		AddProject("web", "apps/web", "").
		Build()
	ws := detectWorkspace(t, fs)

	runner := tasks.NewMockRunner()
	var buf bytes.Buffer

	pipeline := NewConfigureLinters(fs, runner, &buf)
	err := pipeline.Run(context.Background(), ws, Options{Project: "missing"})
	require.Error(t, err)
	require.Empty(t, runner.Calls)
}

func TestRun_SkipInstall(t *testing.T) {
	fs := workspace.NewBuilder("/workspace").
		AddProject("web", "apps/web", "").
		Build()
	ws := detectWorkspace(t, fs)

	runner := tasks.NewMockRunner()
	var buf bytes.Buffer

	pipeline := NewConfigureLinters(fs, runner, &buf)
	require.NoError(t, pipeline.Run(context.Background(), ws, Options{SkipInstall: true}))

	require.Equal(t, []string{"schematic lint-baseline --project web"}, runner.Calls)
	require.Equal(t, 0, runner.PendingInstalls())
}

func TestRun_SchematicFailureAborts(t *testing.T) {
	fs := workspace.NewBuilder("/workspace").
		AddProject("web", "apps/web", "").
		Build()
	ws := detectWorkspace(t, fs)

	runner := tasks.NewMockRunner()
	runner.SchematicErr = errors.New("boom")
	var buf bytes.Buffer

	pipeline := NewConfigureLinters(fs, runner, &buf)
	err := pipeline.Run(context.Background(), ws, Options{})
	require.ErrorIs(t, err, runner.SchematicErr)

	// nothing written after the failing step
	require.False(t, fs.Exists("/workspace/package.json"))
	require.False(t, fs.Exists("/workspace/tslint.json"))
	require.Equal(t, 0, runner.PendingInstalls())
}

func TestRun_CreatesManifestWhenMissing(t *testing.T) {
	fs := workspace.NewBuilder("/workspace").
		AddProject("web", "apps/web", "").
		Build()
	ws := detectWorkspace(t, fs)

	runner := tasks.NewMockRunner()
	var buf bytes.Buffer

	pipeline := NewConfigureLinters(fs, runner, &buf)
	require.NoError(t, pipeline.Run(context.Background(), ws, Options{}))

	data, err := fs.ReadFile("/workspace/package.json")
	require.NoError(t, err)
	require.True(t, gjson.GetBytes(data, "devDependencies.prettier").Exists())
}

func TestRun_Idempotent(t *testing.T) {
	fs := workspace.NewBuilder("/workspace").
		AddProject("web", "apps/web", "").
		AddManifest(`{"name": "ws"}`).
		Build()
	ws := detectWorkspace(t, fs)

	runner := tasks.NewMockRunner()
	var buf bytes.Buffer
	pipeline := NewConfigureLinters(fs, runner, &buf)

	require.NoError(t, pipeline.Run(context.Background(), ws, Options{}))
	first, err := fs.ReadFile("/workspace/package.json")
	require.NoError(t, err)

	require.NoError(t, pipeline.Run(context.Background(), ws, Options{}))
	second, err := fs.ReadFile("/workspace/package.json")
	require.NoError(t, err)

	require.Equal(t, string(first), string(second))
}
