package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func sampleReport() Report {
	return NewReport([]models.Contact{
		{ID: 1, FirstName: "Ann", Company: "Acme", AddedAt: models.Ptr("2024-01-01")},
		{ID: 2, FirstName: "Bo", Company: "Initech"},
	}, "acme", fixedNow)
}

func TestNewReport(t *testing.T) {
	r := sampleReport()
	require.Len(t, r.ID, 36)
	require.Equal(t, 2, r.Summary.Total)
	require.Len(t, r.Rows, 1)
	require.Equal(t, "acme", r.Query)
	require.True(t, strings.HasPrefix(r.Name(), "contacts-report-20240506T070809Z-"))
	require.True(t, strings.HasSuffix(r.Name(), ".json"))
}

func TestFileExporter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	r := sampleReport()

	loc, err := NewFileExporter(dir).Export(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, r.Name()), loc)

	b, err := os.ReadFile(loc)
	require.NoError(t, err)
	var got Report
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, r.ID, got.ID)
	require.Equal(t, r.Summary, got.Summary)
}

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Exporter(t *testing.T) {
	fake := &fakeS3{}
	r := sampleReport()

	loc, err := NewS3Exporter(fake, "reports", "contactdesk").Export(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, "s3://reports/contactdesk/"+r.Name(), loc)
	require.Equal(t, "reports", aws.ToString(fake.in.Bucket))
	require.Equal(t, "contactdesk/"+r.Name(), aws.ToString(fake.in.Key))
	require.Equal(t, "application/json", aws.ToString(fake.in.ContentType))
	require.Contains(t, string(fake.body), `"total": 2`)
}

func TestS3Exporter_Error(t *testing.T) {
	boom := errors.New("denied")
	_, err := NewS3Exporter(&fakeS3{err: boom}, "b", "").Export(context.Background(), sampleReport())
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "upload report to s3://b/")
}

func TestNewS3Client_PathStyleEndpoint(t *testing.T) {
	var gotPath, gotMethod string
	e := echo.New()
	e.PUT("/*", func(c echo.Context) error {
		gotMethod = c.Request().Method
		gotPath = c.Request().URL.Path
		_, _ = io.Copy(io.Discard, c.Request().Body)
		return c.NoContent(http.StatusOK)
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	client, err := NewS3Client(context.Background(), S3Options{
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "minio",
		SecretKey: "minio123",
	})
	require.NoError(t, err)

	r := sampleReport()
	_, err = NewS3Exporter(client, "reports", "").Export(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/reports/"+r.Name(), gotPath)
}
