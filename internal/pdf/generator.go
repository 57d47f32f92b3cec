package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const renderTimeout = 30 * time.Second

// Generator renders projected HTML into binary output. The API handler and
// the preview worker both depend on this interface so tests can swap in a
// fake instead of launching Chromium.
type Generator interface {
	PDF(html string) ([]byte, error)
	Screenshot(html string, quality int) ([]byte, error)
}

// ChromiumGenerator drives a headless Chromium via go-rod.
type ChromiumGenerator struct{}

// NewChromiumGenerator returns the production Generator.
func NewChromiumGenerator() *ChromiumGenerator {
	return &ChromiumGenerator{}
}

// PDF renders the HTML document and prints it to A4 PDF bytes.
func (g *ChromiumGenerator) PDF(html string) ([]byte, error) {
	page, cleanup, err := openPage(html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PaperWidth:        float64Ptr(8.27),
		PaperHeight:       float64Ptr(11.69),
		MarginTop:         float64Ptr(0),
		MarginBottom:      float64Ptr(0),
		MarginLeft:        float64Ptr(0),
		MarginRight:       float64Ptr(0),
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read pdf bytes: %w", err)
	}
	return data, nil
}

// Screenshot renders the HTML document and captures a JPEG of the sheet,
// used for dashboard preview thumbnails.
func (g *ChromiumGenerator) Screenshot(html string, quality int) ([]byte, error) {
	page, cleanup, err := openPage(html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if element, err := page.Timeout(5 * time.Second).Element(".sheet"); err == nil {
		if data, shotErr := element.Screenshot(proto.PageCaptureScreenshotFormatJpeg, quality); shotErr == nil {
			return data, nil
		}
	}

	data, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: intPtr(quality),
	})
	if err != nil {
		return nil, fmt.Errorf("page screenshot: %w", err)
	}
	return data, nil
}

func openPage(html string) (_ *rod.Page, cleanup func(), err error) {
	cleanup = func() {}

	launch := launcher.New().
		Headless(true).
		NoSandbox(true)
	if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return nil, cleanup, fmt.Errorf("launch chromium: %w", err)
	}
	cleanup = launch.Cleanup

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, cleanup, fmt.Errorf("connect browser: %w", err)
	}
	prev := cleanup
	cleanup = func() {
		_ = browser.Close()
		prev()
	}

	page, err := browser.Timeout(renderTimeout).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, cleanup, fmt.Errorf("create page: %w", err)
	}

	page = page.Timeout(renderTimeout)
	if err := page.SetDocumentContent(html); err != nil {
		return nil, cleanup, fmt.Errorf("set document content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, cleanup, fmt.Errorf("wait load: %w", err)
	}
	// Give web fonts a chance to settle before printing.
	page.MustWaitIdle()

	return page, cleanup, nil
}

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }
