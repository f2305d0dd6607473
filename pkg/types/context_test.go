package types_test

import (
	"testing"

	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/bundlekit/stylerules/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildContext(t *testing.T) {
	tests := []struct {
		name       string
		rootDir    string
		isServer   bool
		isClient   bool
		production bool
		entryFile  string
		wantErr    bool
		wantKind   types.TargetKind
	}{
		{
			name:     "server_build",
			rootDir:  "/app",
			isServer: true,
			wantKind: types.TargetServer,
		},
		{
			name:      "client_with_entry",
			rootDir:   "/app",
			isClient:  true,
			entryFile: "/app/_app.tsx",
			wantKind:  types.TargetClientWithEntry,
		},
		{
			name:     "client_without_entry",
			rootDir:  "/app",
			isClient: true,
			wantKind: types.TargetClientWithoutEntry,
		},
		{
			name:     "both_targets_rejected",
			rootDir:  "/app",
			isServer: true,
			isClient: true,
			wantErr:  true,
		},
		{
			name:    "neither_target_rejected",
			rootDir: "/app",
			wantErr: true,
		},
		{
			name:     "empty_root_rejected",
			rootDir:  "",
			isClient: true,
			wantErr:  true,
		},
		{
			name:     "relative_root_rejected",
			rootDir:  "app/src",
			isClient: true,
			wantErr:  true,
		},
		{
			name:      "server_with_entry_rejected",
			rootDir:   "/app",
			isServer:  true,
			entryFile: "/app/_app.tsx",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := types.NewBuildContext(tt.rootDir, tt.isServer, tt.isClient, tt.production, tt.entryFile)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
				assert.Nil(t, ctx)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, ctx.Target.Kind())
			assert.Equal(t, tt.rootDir, ctx.RootDir)
		})
	}
}

func TestBuildTarget_EntryFile(t *testing.T) {
	entry, ok := types.ClientTarget("/app/_app.tsx").EntryFile()
	assert.True(t, ok)
	assert.Equal(t, "/app/_app.tsx", entry)

	_, ok = types.ClientTarget("").EntryFile()
	assert.False(t, ok)

	_, ok = types.ServerTarget().EntryFile()
	assert.False(t, ok)
}

func TestBuildTarget_Kinds(t *testing.T) {
	assert.True(t, types.ServerTarget().IsServer())
	assert.False(t, types.ServerTarget().IsClient())
	assert.True(t, types.ClientTarget("").IsClient())
	assert.True(t, types.ClientTarget("/app/_app.tsx").IsClient())
	assert.False(t, types.ClientTarget("/app/_app.tsx").IsServer())
}

func TestBuildContext_Vendored(t *testing.T) {
	ctx := &types.BuildContext{RootDir: "/app"}
	assert.Equal(t, []string{"node_modules"}, ctx.Vendored())

	ctx.VendoredDirs = []string{"vendor", "third_party"}
	assert.Equal(t, []string{"vendor", "third_party"}, ctx.Vendored())
}

func TestCandidate_HasIssuer(t *testing.T) {
	assert.True(t, types.Candidate{Path: "/a.css", Issuer: "/b.tsx"}.HasIssuer())
	assert.False(t, types.Candidate{Path: "/a.css"}.HasIssuer())
}
