package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
	Scatter      *ScatterSample         `json:"scatter,omitempty"`
}

// ScatterSample is one scattering decision drawn at the hit point
type ScatterSample struct {
	Absorbed  bool       `json:"absorbed"`
	Specular  bool       `json:"specular"`
	PDF       float64    `json:"pdf"`
	Direction [3]float64 `json:"direction"`
	Weight    [3]float64 `json:"weight"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo describes a material and its parameters
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = describeTexture(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		return "dielectric", properties

	case *material.DiffuseLight:
		properties["emission"] = describeTexture(m.Emit)
		return "diffuse_light", properties

	case *material.Mix:
		material1Type, material1Props := extractMaterialInfo(m.Material1)
		material2Type, material2Props := extractMaterialInfo(m.Material2)
		properties["material1"] = map[string]interface{}{"type": material1Type, "properties": material1Props}
		properties["material2"] = map[string]interface{}{"type": material2Type, "properties": material2Props}
		properties["ratio"] = m.Ratio
		return "mixed", properties

	default:
		return "unknown", properties
	}
}

// describeTexture returns the color of solid textures and the kind of the rest
func describeTexture(texture material.Texture) interface{} {
	switch t := texture.(type) {
	case *material.SolidColor:
		return vecArray(t.Color)
	case *material.Checker:
		return "checker"
	case *material.NoiseTexture:
		return "noise"
	case *material.Gradient:
		return "gradient"
	case *material.ImageTexture:
		return fmt.Sprintf("image %dx%d", t.Width, t.Height)
	default:
		return "texture"
	}
}

// inspectPixel casts an unjittered ray through image pixel (x, y), with y
// counted from the top row, and reports the first surface hit
func inspectPixel(sceneObj *scene.Scene, width, pixelX, pixelY int) InspectResponse {
	cameraConfig := sceneObj.CameraConfig
	cameraConfig.Width = width
	width, height := cameraConfig.ImageSize()

	// Same pixel mapping as the renderer without the jitter
	row := height - 1 - pixelY
	u := (float64(pixelX) + 0.5) / float64(max(width-1, 1))
	v := (float64(row) + 0.5) / float64(max(height-1, 1))

	// The sampler only matters for lens cameras
	ray := renderer.NewCamera(cameraConfig).GetRay(u, v, core.NewSeededSampler(0))

	hit, ok := sceneObj.World.Hit(ray, integrator.ShadowAcneEpsilon, math.Inf(1))
	if !ok {
		return InspectResponse{Hit: false}
	}

	response := InspectResponse{
		Hit:       true,
		Point:     vecArray(hit.Point),
		Normal:    vecArray(hit.Normal),
		Distance:  hit.T * ray.Direction.Length(),
		FrontFace: hit.FrontFace,
	}
	if hit.Material != nil {
		response.MaterialType, response.Properties = extractMaterialInfo(hit.Material)
		response.Scatter = sampleScatter(ray, hit, sceneObj.Lights)
	}
	return response
}

// sampleScatter draws a single deterministic scatter from the hit material
func sampleScatter(ray core.Ray, hit *material.HitRecord, lights pdf.Target) *ScatterSample {
	result, ok := hit.Material.Scatter(ray, *hit, lights, core.NewSeededSampler(1))
	if !ok {
		return &ScatterSample{Absorbed: true}
	}
	return &ScatterSample{
		Specular:  result.IsSpecular(),
		PDF:       result.PDF,
		Direction: vecArray(result.Scattered.Direction),
		Weight:    vecArray(result.Attenuation),
	}
}

// handleInspect reports what lies under one pixel of a scene render
func (s *Server) handleInspect(c echo.Context) error {
	name := c.QueryParam("scene")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "scene is required")
	}

	width, err := intParam(c, "width", MaxWidth)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	x, errX := strconv.Atoi(c.QueryParam("x"))
	y, errY := strconv.Atoi(c.QueryParam("y"))
	if err := errors.Join(errX, errY); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "x and y must be integers")
	}

	sceneObj, err := loadScene(name, 42)
	if err != nil {
		return err
	}
	if width == 0 {
		width = sceneObj.CameraConfig.Width
	}

	cameraConfig := sceneObj.CameraConfig
	cameraConfig.Width = width
	_, height := cameraConfig.ImageSize()
	if x < 0 || x >= width || y < 0 || y >= height {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("pixel (%d, %d) outside %dx%d image", x, y, width, height))
	}

	return c.JSON(http.StatusOK, inspectPixel(sceneObj, width, x, y))
}
