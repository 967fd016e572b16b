package client

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/service"
)

type RemoteTranscriptExporter struct {
	cc   *khttp.Client
	base string
}

func NewRemoteTranscriptExporter(cc *khttp.Client, endpoint string) (service.TranscriptExporter, error) {
	base, err := baseURL(endpoint)
	if err != nil {
		return nil, err
	}
	return &RemoteTranscriptExporter{cc: cc, base: base}, nil
}

func (e *RemoteTranscriptExporter) Export(ctx context.Context, id int64) (domain.Transcript, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		e.base+"/api/mgp/pdf/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return domain.Transcript{}, &service.ExportError{ResultId: id, Err: err}
	}
	resp, err := e.cc.Do(req)
	if err != nil {
		if kerrors.IsNotFound(err) {
			err = fmt.Errorf("%w: %s", service.ErrResultNotFound, err)
		}
		return domain.Transcript{}, &service.ExportError{ResultId: id, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.Transcript{}, &service.ExportError{ResultId: id,
			Err: fmt.Errorf("计算服务返回状态码 %d", resp.StatusCode)}
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Transcript{}, &service.ExportError{ResultId: id, Err: err}
	}
	return domain.Transcript{
		Filename: filename(resp.Header.Get("Content-Disposition"), id),
		Content:  content,
	}, nil
}

func filename(disposition string, id int64) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
		return params["filename"]
	}
	return fmt.Sprintf("bulletin-%d.pdf", id)
}
