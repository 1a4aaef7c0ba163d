package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	objectName  string
	contentType string
	size        int64
	err         error
}

func (f *fakeUploader) Upload(_ context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.objectName = objectName
	f.contentType = contentType
	f.size = size
	io.Copy(io.Discard, reader)
	return "https://cdn.example.com/personas/" + objectName, nil
}

func photoRequest(t *testing.T, field, filename, contentType string, payload []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/persona-photo", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func uploadContext(t *testing.T, req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("userID", "11111111-1111-1111-1111-111111111111")
	return c, w
}

func TestPersonaPhoto_Succeeds(t *testing.T) {
	uploader := &fakeUploader{}
	c, w := uploadContext(t, photoRequest(t, "file", "head shot.png", "image/png", []byte("png-bytes")))

	NewUploadHandler(uploader).PersonaPhoto(c)

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Code int `json:"code"`
		Data struct {
			FileURL string `json:"file_url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 0, env.Code)
	assert.Contains(t, env.Data.FileURL, "https://cdn.example.com/personas/")
	assert.Contains(t, uploader.objectName, "11111111-1111-1111-1111-111111111111_")
	assert.Contains(t, uploader.objectName, "head_shot.png")
	assert.Equal(t, "image/png", uploader.contentType)
	assert.Equal(t, int64(len("png-bytes")), uploader.size)
}

func TestPersonaPhoto_MissingFile(t *testing.T) {
	c, w := uploadContext(t, photoRequest(t, "attachment", "x.png", "image/png", []byte("data")))

	NewUploadHandler(&fakeUploader{}).PersonaPhoto(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "40001")
}

func TestPersonaPhoto_RejectsNonImage(t *testing.T) {
	uploader := &fakeUploader{}
	c, w := uploadContext(t, photoRequest(t, "file", "report.pdf", "application/pdf", []byte("%PDF")))

	NewUploadHandler(uploader).PersonaPhoto(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, uploader.objectName)
}

func TestPersonaPhoto_RejectsOversized(t *testing.T) {
	uploader := &fakeUploader{}
	big := bytes.Repeat([]byte("a"), maxPhotoSize+1)
	c, w := uploadContext(t, photoRequest(t, "file", "huge.png", "image/png", big))

	NewUploadHandler(uploader).PersonaPhoto(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, uploader.objectName)
}
