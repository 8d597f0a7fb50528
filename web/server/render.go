package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SSEEvent is a single Server-Sent Event
type SSEEvent struct {
	Type string `json:"type"` // "console", "error" or "complete"
	Data string `json:"data"` // JSON-encoded data or a plain message
}

// RenderResult is an encoded render and its statistics
type RenderResult struct {
	Image          []byte
	Format         output.Format
	Width          int
	Height         int
	Stats          renderer.RenderStats
	PrimitiveCount int
	URL            string // Set when the render was uploaded
}

// CompleteUpdate is the payload of the final "complete" event
type CompleteUpdate struct {
	ImageData      string  `json:"imageData"` // Base64 encoded image
	ContentType    string  `json:"contentType"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	ElapsedMs      int64   `json:"elapsedMs"`
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	Workers        int     `json:"workers"`
	PrimitiveCount int     `json:"primitiveCount"`
	URL            string  `json:"url,omitempty"`
}

// handleRender renders a scene and streams renderer output via SSE, ending
// with a "complete" event carrying the image or an "error" event
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	// A single writer goroutine owns w
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, sceneObj, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	result, err := s.renderImage(ctx, req, sceneObj, webLogger)

	// The renderer has returned, so nothing else writes to consoleChan
	close(consoleChan)
	<-consoleDone

	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}
	s.handleComplete(ctx, sseEventChan, result)
}

// handleImage renders a scene and returns the encoded image directly
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, sceneObj, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	renderID := fmt.Sprintf("image-%d", time.Now().UnixNano())
	result, err := s.renderImage(r.Context(), req, sceneObj, NewWebLogger(renderID, nil))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		http.Error(w, fmt.Sprintf("Rendering failed: %v", err), status)
		return
	}

	w.Header().Set("Content-Type", result.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Image)))
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(result.Stats.Duration.Milliseconds(), 10))
	if result.URL != "" {
		w.Header().Set("X-Render-URL", result.URL)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Image); err != nil {
		log.Printf("Error writing image: %v", err)
	}
}

// renderImage applies the request to the scene's configuration, renders and
// encodes the result, uploading it when requested
func (s *Server) renderImage(ctx context.Context, req *RenderRequest, sceneObj *scene.Scene, logger core.Logger) (*RenderResult, error) {
	config := sceneObj.RenderConfig
	config.Width = req.Width
	config.Height = req.Height
	config.SamplesPerPixel = req.SamplesPerPixel
	config.MaxRecursionDepth = req.MaxDepth
	config.EnableShadows = req.Shadows
	config.EnableAmbientOcclusion = req.AO
	config.AOSamples = req.AOSamples
	config.Gamma = req.Gamma

	raytracer, err := renderer.NewRenderer(sceneObj, sceneObj.CameraConfig, config, logger)
	if err != nil {
		return nil, err
	}
	fb, stats, err := raytracer.Render(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, fb.ToImage(), req.Format); err != nil {
		return nil, err
	}

	result := &RenderResult{
		Image:          buf.Bytes(),
		Format:         req.Format,
		Width:          fb.Width,
		Height:         fb.Height,
		Stats:          stats,
		PrimitiveCount: sceneObj.GetPrimitiveCount(),
	}

	if req.Upload {
		if s.uploader == nil {
			return nil, output.ErrUploadDisabled
		}
		key := output.RenderKey(req.Scene, time.Now(), req.Format)
		if result.URL, err = s.uploader.Upload(ctx, key, result.Image, req.Format.ContentType()); err != nil {
			return nil, err
		}
		logger.Printf("Uploaded %s (%d bytes)\n", result.URL, len(result.Image))
	}

	return result, nil
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// writeSSEEvents writes events until the channel is closed. Once the client
// disconnects remaining events are drained without writing.
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	flusher, _ := w.(http.Flusher)
	disconnected := false

	for event := range sseEventChan {
		if disconnected || ctx.Err() != nil {
			disconnected = true
			continue
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			disconnected = true
			continue
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards console messages until consoleChan is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}
		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		}
	}
}

// handleComplete sends the finished image
func (s *Server) handleComplete(ctx context.Context, sseEventChan chan<- SSEEvent, result *RenderResult) {
	update := CompleteUpdate{
		ImageData:      base64.StdEncoding.EncodeToString(result.Image),
		ContentType:    result.Format.ContentType(),
		Width:          result.Width,
		Height:         result.Height,
		ElapsedMs:      result.Stats.Duration.Milliseconds(),
		TotalPixels:    result.Stats.TotalPixels,
		TotalSamples:   result.Stats.TotalSamples,
		AverageSamples: result.Stats.AverageSamples(),
		Workers:        result.Stats.Workers,
		PrimitiveCount: result.PrimitiveCount,
		URL:            result.URL,
	}

	data, err := json.Marshal(update)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Error marshaling result: %v", err))
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: string(data)}:
	case <-ctx.Done():
	}
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
