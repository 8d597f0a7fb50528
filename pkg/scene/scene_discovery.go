package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene ID is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier used on the command line and in URLs
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtinScene struct {
	info  SceneInfo
	build func() (*Scene, error)
}

// DefaultSceneID is rendered when no scene is named
const DefaultSceneID = "spheres"

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "spheres",
			Description: "Matte, metal and glass spheres on a checkered ground",
			Group:       "Materials",
		},
		build: NewSpheresScene,
	},
	{
		info: SceneInfo{
			ID:          "glass",
			Description: "Glass sphere and lens in front of colored pillars under a sky gradient",
			Group:       "Materials",
		},
		build: NewGlassScene,
	},
	{
		info: SceneInfo{
			ID:          "spheregrid",
			Description: "Grid of reflective spheres varying in hue, saturation and highlight",
			Group:       "Materials",
		},
		build: NewSphereGridScene,
	},
	{
		info: SceneInfo{
			ID:          "room",
			Description: "Room with a reflective tiled floor, tori and capped cylinders",
			Group:       "Rooms",
		},
		build: NewRoomScene,
	},
	{
		info: SceneInfo{
			ID:          "cornell",
			Description: "Cornell box with metal and glass spheres under a point light",
			Group:       "Rooms",
		},
		build: NewCornellScene,
	},
	{
		info: SceneInfo{
			ID:          "shapes",
			Description: "One of every primitive with UV debug and checkerboard textures",
			Group:       "Primitives",
		},
		build: NewShapesScene,
	},
}

// NewSceneByID builds the built-in scene registered under id
func NewSceneByID(id string) (*Scene, error) {
	if id == "" {
		id = DefaultSceneID
	}
	for _, s := range builtinScenes {
		if s.info.ID == id {
			return s.build()
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, id, strings.Join(SceneIDs(), ", "))
}

// SceneIDs returns the IDs of all built-in scenes in registration order
func SceneIDs() []string {
	ids := make([]string, len(builtinScenes))
	for i, s := range builtinScenes {
		ids[i] = s.info.ID
	}
	return ids
}

// ListScenes returns every built-in scene with its display name filled in
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	for i, s := range builtinScenes {
		info := s.info
		if info.DisplayName == "" {
			info.DisplayName = titleCase(info.ID)
		}
		scenes[i] = info
	}
	return scenes
}

// ListAllScenes returns the built-in scenes grouped by category, groups in
// alphabetical order and scenes in registration order within a group
func ListAllScenes() ScenesResponse {
	var response ScenesResponse

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range ListScenes() {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	groupNames := make([]string, 0, len(groupMap))
	for groupName := range groupMap {
		groupNames = append(groupNames, groupName)
	}
	sort.Strings(groupNames)

	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response
}

// titleCase converts a filename-style string to title case
// e.g., "glass-room" -> "Glass Room"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
