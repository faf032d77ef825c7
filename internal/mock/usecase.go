package mock

import (
	"context"

	"github.com/art2art/portfolio-media-go/internal/port"
)

// MockMediaUploader implements port.MediaUploader for tests.
type MockMediaUploader struct {
	Out    []port.MediaOutput
	Err    error
	In     port.UploadMediaInput
	Called bool
}

func (m *MockMediaUploader) UploadMedia(ctx context.Context, in port.UploadMediaInput) ([]port.MediaOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockMediaLister implements port.MediaLister for tests.
type MockMediaLister struct {
	Out          port.ListWorkMediaOutput
	Err          error
	In           port.ListWorkMediaInput
	Called       bool
	PublicCalled bool
}

func (m *MockMediaLister) ListWorkMedia(ctx context.Context, in port.ListWorkMediaInput) (port.ListWorkMediaOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

func (m *MockMediaLister) ListPublicWorkMedia(ctx context.Context, in port.ListWorkMediaInput) (port.ListWorkMediaOutput, error) {
	m.PublicCalled = true
	m.In = in
	return m.Out, m.Err
}

// MockMediaDeleter implements port.MediaDeleter for tests.
type MockMediaDeleter struct {
	Err    error
	In     port.DeleteMediaInput
	Called bool
}

func (m *MockMediaDeleter) DeleteMedia(ctx context.Context, in port.DeleteMediaInput) error {
	m.Called = true
	m.In = in
	return m.Err
}
