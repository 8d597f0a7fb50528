package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp01()
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo describes the material with type assertions
func extractMaterialInfo(mat core.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Diffuse:
		properties["kd"] = m.Kd
		properties["ks"] = m.Ks
		properties["shininess"] = m.Shininess
		switch albedo := m.Albedo.(type) {
		case *material.SolidColor:
			properties["albedo"] = vecArray(albedo.Color)
			properties["color"] = hexColor(albedo.Color)
		case *material.Checker:
			properties["texture"] = "checker"
			properties["even"] = hexColor(albedo.Even)
			properties["odd"] = hexColor(albedo.Odd)
		case *material.ImageTexture:
			properties["texture"] = "image"
		}
		return "diffuse", properties

	case *material.Reflective:
		properties["albedo"] = vecArray(m.Color)
		properties["color"] = hexColor(m.Color)
		properties["ks"] = m.Ks
		properties["shininess"] = m.Shininess
		return "reflective", properties

	case *material.Refractive:
		properties["color"] = hexColor(m.Color)
		properties["refractiveIndex"] = m.IOR
		properties["kr"] = m.Kr
		properties["kt"] = m.Kt
		return "refractive", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo describes the struck shape
func extractGeometryInfo(shape core.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vecArray(geom.Point)
		properties["normal"] = vecArray(geom.Normal)
		return "plane", properties

	case *geometry.Box:
		properties["center"] = vecArray(geom.Center())
		properties["min"] = vecArray(geom.Min)
		properties["max"] = vecArray(geom.Max)
		return "box", properties

	case *geometry.Cylinder:
		properties["baseCenter"] = vecArray(geom.BaseCenter)
		properties["topCenter"] = vecArray(geom.TopCenter)
		properties["radius"] = geom.Radius
		return "cylinder", properties

	case *geometry.Ellipsoid:
		properties["center"] = vecArray(geom.Center)
		properties["radii"] = vecArray(geom.Radii)
		return "ellipsoid", properties

	case *geometry.Torus:
		properties["center"] = vecArray(geom.Center)
		properties["axis"] = vecArray(geom.Axis)
		properties["majorRadius"] = geom.MajorRadius
		properties["minorRadius"] = geom.MinorRadius
		return "torus", properties

	case *geometry.Disc:
		properties["center"] = vecArray(geom.Center)
		properties["normal"] = vecArray(geom.Normal)
		properties["radius"] = geom.Radius
		return "disc", properties

	case *geometry.Triangle:
		properties["vertices"] = [][3]float64{vecArray(geom.V0), vecArray(geom.V1), vecArray(geom.V2)}
		return "triangle", properties

	default:
		return "unknown", properties
	}
}

// handleInspect casts a ray through a pixel and describes the first hit
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq := &RenderRequest{}
	sceneObj, err := s.parseCommonSceneParams(r, inspectReq)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}
	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	config := sceneObj.RenderConfig
	config.Width = inspectReq.Width
	config.Height = inspectReq.Height
	raytracer, err := renderer.NewRenderer(sceneObj, sceneObj.CameraConfig, config, NewWebLogger("inspect", nil))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	hit, ok := raytracer.InspectPixel(pixelX, pixelY)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(hit.Material())
	geometryType, geometryProps := extractGeometryInfo(hit.Shape)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
