package backups

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dentora/backoffice/internal/gateway"
	"github.com/dentora/backoffice/internal/shared"
	_ "github.com/dentora/backoffice/testing"
)

type stubGateway struct {
	backups      []Backup
	downloadPath string
	downloadErr  error
	downloadBody string
	contentType  string
}

func (s *stubGateway) Get(ctx context.Context, path string, out any) (bool, error) {
	if target, ok := out.(*[]Backup); ok {
		*target = s.backups
		return true, nil
	}
	return false, nil
}

func (s *stubGateway) Download(ctx context.Context, path string) (io.ReadCloser, string, error) {
	s.downloadPath = path
	if s.downloadErr != nil {
		return nil, "", s.downloadErr
	}
	return io.NopCloser(strings.NewReader(s.downloadBody)), s.contentType, nil
}

func TestListBackups(t *testing.T) {
	gw := &stubGateway{backups: []Backup{{ID: 1, Filename: "dump-2026-08-30.sql.gz"}}}
	svc := NewService(gw)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestDownloadStreamsArchive(t *testing.T) {
	gw := &stubGateway{downloadBody: "archive-bytes", contentType: "application/gzip"}
	svc := NewService(gw)

	body, contentType, err := svc.Download(context.Background(), 3)
	require.NoError(t, err)
	defer func() {
		_ = body.Close()
	}()

	require.Equal(t, "/backups/3/download", gw.downloadPath)
	require.Equal(t, "application/gzip", contentType)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Equal(t, "archive-bytes", string(data))
}

func TestDownloadWithoutCredentialsPromptsReauth(t *testing.T) {
	gw := &stubGateway{downloadErr: gateway.ErrNoCredentials}
	svc := NewService(gw)

	_, _, err := svc.Download(context.Background(), 3)
	require.ErrorIs(t, err, shared.ErrNotAuthenticated)
}
