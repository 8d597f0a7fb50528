package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request limits
const (
	MinImageSize = 16
	MaxImageSize = 2000
	MaxSamples   = 256
	MaxDepth     = 20
)

// Uploader publishes an encoded render and returns where it can be fetched
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Server handles web requests for the raytracer
type Server struct {
	port     int
	uploader Uploader // nil disables ?upload=true
}

// NewServer creates a new web server. uploader may be nil.
func NewServer(port int, uploader Uploader) *Server {
	return &Server{port: port, uploader: uploader}
}

// RenderRequest holds the parsed parameters of a render
type RenderRequest struct {
	Scene           string        `json:"scene"`
	Width           int           `json:"width"`
	Height          int           `json:"height"`
	SamplesPerPixel int           `json:"samplesPerPixel"`
	MaxDepth        int           `json:"maxDepth"`
	Shadows         bool          `json:"shadows"`
	AO              bool          `json:"ambientOcclusion"`
	AOSamples       int           `json:"aoSamples"`
	Gamma           float64       `json:"gamma"`
	Format          output.Format `json:"format"`
	Upload          bool          `json:"upload"`
}

// Handler returns the router for all endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/image", s.handleImage)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes by group
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListAllScenes())
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneID := r.URL.Query().Get("scene")
	if sceneID == "" {
		sceneID = scene.DefaultSceneID
	}

	sceneObj, err := scene.NewSceneByID(sceneID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	config := sceneObj.RenderConfig
	camera := sceneObj.CameraConfig
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scene":          sceneID,
		"primitiveCount": sceneObj.GetPrimitiveCount(),
		"lightCount":     len(sceneObj.Lights),
		"camera": map[string]interface{}{
			"eye":    [3]float64{camera.Eye.X, camera.Eye.Y, camera.Eye.Z},
			"target": [3]float64{camera.Target.X, camera.Target.Y, camera.Target.Z},
			"fov":    camera.FOV,
		},
		"defaults": map[string]interface{}{
			"width":            config.Width,
			"height":           config.Height,
			"samplesPerPixel":  config.SamplesPerPixel,
			"maxDepth":         config.MaxRecursionDepth,
			"shadows":          config.EnableShadows,
			"ambientOcclusion": config.EnableAmbientOcclusion,
			"aoSamples":        config.AOSamples,
			"gamma":            config.Gamma,
		},
		"limits": map[string]interface{}{
			"width":           map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"height":          map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"samplesPerPixel": map[string]int{"min": 1, "max": MaxSamples},
			"maxDepth":        map[string]int{"min": 0, "max": MaxDepth},
			"aoSamples":       map[string]int{"min": 1, "max": MaxSamples},
		},
	})
}

// parseCommonSceneParams reads the scene and image size, defaulting the size
// to the scene's own configuration
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) (*scene.Scene, error) {
	query := r.URL.Query()

	req.Scene = query.Get("scene")
	if req.Scene == "" {
		req.Scene = scene.DefaultSceneID
	}
	sceneObj, err := scene.NewSceneByID(req.Scene)
	if err != nil {
		return nil, err
	}

	config := sceneObj.RenderConfig
	if req.Width, err = parseIntParam(query, "width", config.Width, MinImageSize, MaxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", config.Height, MinImageSize, MaxImageSize); err != nil {
		return nil, err
	}
	return sceneObj, nil
}

// parseRenderRequest parses request parameters on top of the scene defaults
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, *scene.Scene, error) {
	req := &RenderRequest{}
	sceneObj, err := s.parseCommonSceneParams(r, req)
	if err != nil {
		return nil, nil, err
	}

	query := r.URL.Query()
	config := sceneObj.RenderConfig

	if req.SamplesPerPixel, err = parseIntParam(query, "samplesPerPixel", config.SamplesPerPixel, 1, MaxSamples); err != nil {
		return nil, nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", config.MaxRecursionDepth, 0, MaxDepth); err != nil {
		return nil, nil, err
	}
	if req.Shadows, err = parseBoolParam(query, "shadows", config.EnableShadows); err != nil {
		return nil, nil, err
	}
	if req.AO, err = parseBoolParam(query, "ambientOcclusion", config.EnableAmbientOcclusion); err != nil {
		return nil, nil, err
	}
	if req.AOSamples, err = parseIntParam(query, "aoSamples", config.AOSamples, 1, MaxSamples); err != nil {
		return nil, nil, err
	}
	if req.Gamma, err = parseFloatParam(query, "gamma", config.Gamma, 0.1, 5.0); err != nil {
		return nil, nil, err
	}
	if req.Upload, err = parseBoolParam(query, "upload", false); err != nil {
		return nil, nil, err
	}

	req.Format = output.FormatPNG
	if value := query.Get("format"); value != "" {
		if req.Format, err = output.ParseFormat(value); err != nil {
			return nil, nil, err
		}
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.SamplesPerPixel > 16 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	return req, sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter ("true", "1", "false", ...)
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// writeJSON writes v with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
