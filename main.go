package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Largest side of textures and environment maps loaded from disk
const maxTextureSize = 2048

// options holds the parsed command line
type options struct {
	SceneID   string
	Output    string // Empty means output/<scene>/render_<timestamp>.<format>
	Format    string
	Thumbnail uint
	EnvMap    string
	EnvScale  float64
	Texture   string
	Upload    bool
	List      bool
	Help      bool

	// Render overrides, applied only when the flag was given
	Width, Height, Samples, Depth, AOSamples, Workers int
	Shadows, AO                                       bool
	Gamma                                             float64
	Seed                                              int64
	set                                               map[string]bool
}

// getEnv returns the environment value for key, or fallback
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return fallback
}

// parseOptions parses args; defaults for scene, output format and workers come
// from RAYTRACER_* environment variables
func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.SceneID, "scene", getEnv("RAYTRACER_SCENE", scene.DefaultSceneID), "Scene to render (see -list)")
	fs.StringVar(&opts.Output, "output", "", "Output file (.png or .bmp)")
	fs.StringVar(&opts.Format, "format", getEnv("RAYTRACER_FORMAT", "png"), "Output format when -output is not given: png or bmp")
	fs.UintVar(&opts.Thumbnail, "thumbnail", 0, "Also save a thumbnail with this maximum side")
	fs.StringVar(&opts.EnvMap, "env", "", "Equirectangular image used as the environment map")
	fs.Float64Var(&opts.EnvScale, "env-intensity", 1.0, "Environment map intensity")
	fs.StringVar(&opts.Texture, "texture", "", "Image mapped onto the scene's diffuse spheres")
	fs.BoolVar(&opts.Upload, "upload", false, "Upload the render to the S3 bucket configured by S3_* variables")
	fs.BoolVar(&opts.List, "list", false, "List available scenes")
	fs.BoolVar(&opts.Help, "help", false, "Show help information")

	fs.IntVar(&opts.Width, "width", 0, "Image width (default: scene setting)")
	fs.IntVar(&opts.Height, "height", 0, "Image height (default: scene setting)")
	fs.IntVar(&opts.Samples, "spp", 0, "Samples per pixel (default: scene setting)")
	fs.IntVar(&opts.Depth, "depth", 0, "Maximum reflection/refraction depth (default: scene setting)")
	fs.BoolVar(&opts.Shadows, "shadows", true, "Cast shadow rays")
	fs.BoolVar(&opts.AO, "ao", false, "Enable ambient occlusion")
	fs.IntVar(&opts.AOSamples, "ao-samples", 0, "Ambient occlusion rays per hit (default: scene setting)")
	fs.Float64Var(&opts.Gamma, "gamma", 0, "Output gamma (default: scene setting)")
	fs.Int64Var(&opts.Seed, "seed", 0, "Random seed (default: scene setting)")
	fs.IntVar(&opts.Workers, "workers", getEnvInt("RAYTRACER_WORKERS", 0), "Parallel workers (0 = CPU count)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	if _, ok := os.LookupEnv("RAYTRACER_WORKERS"); ok {
		opts.set["workers"] = true
	}

	if opts.Help {
		fmt.Fprintln(stderr, "Whitted Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Output will be saved to output/<scene>/render_<timestamp>.png unless -output is given")
	}
	return opts, nil
}

// applyOverrides copies the flags that were given onto config
func (o *options) applyOverrides(config renderer.RenderConfig) renderer.RenderConfig {
	if o.set["width"] {
		config.Width = o.Width
	}
	if o.set["height"] {
		config.Height = o.Height
	}
	if o.set["spp"] {
		config.SamplesPerPixel = o.Samples
	}
	if o.set["depth"] {
		config.MaxRecursionDepth = o.Depth
	}
	if o.set["shadows"] {
		config.EnableShadows = o.Shadows
	}
	if o.set["ao"] {
		config.EnableAmbientOcclusion = o.AO
	}
	if o.set["ao-samples"] {
		config.AOSamples = o.AOSamples
	}
	if o.set["gamma"] {
		config.Gamma = o.Gamma
	}
	if o.set["seed"] {
		config.Seed = o.Seed
	}
	if o.set["workers"] {
		config.NumWorkers = o.Workers
	}
	return config
}

// createScene builds a built-in scene by ID
func createScene(sceneID string) (*scene.Scene, error) {
	if sceneID == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}
	return scene.NewSceneByID(sceneID)
}

// outputPath returns the file a render is written to
func (o *options) outputPath(now time.Time) (string, output.Format, error) {
	if o.Output != "" {
		format, err := output.FormatFromPath(o.Output)
		return o.Output, format, err
	}
	format, err := output.ParseFormat(o.Format)
	if err != nil {
		return "", "", err
	}
	filename := fmt.Sprintf("render_%s%s", now.Format("20060102_150405"), format.Extension())
	return filepath.Join("output", o.SceneID, filename), format, nil
}

// thumbnailPath inserts _thumb before the extension
func thumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}

// retexture maps tex onto every diffuse sphere; other shapes have no useful
// texture coordinates for a photograph
func retexture(sc *scene.Scene, tex material.ColorSource) int {
	count := 0
	for _, shape := range sc.Shapes {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			continue
		}
		if diffuse, ok := sphere.Material.(*material.Diffuse); ok {
			sphere.Material = material.NewTexturedDiffuse(tex, diffuse.Kd, diffuse.Ks, diffuse.Shininess)
			count++
		}
	}
	return count
}

// run renders opts.SceneID and saves it, returning the saved path
func run(ctx context.Context, opts *options, logger core.Logger) (string, error) {
	sc, err := createScene(opts.SceneID)
	if err != nil {
		return "", err
	}

	if opts.EnvMap != "" {
		env, err := loaders.LoadEnvironment(opts.EnvMap, maxTextureSize, opts.EnvScale)
		if err != nil {
			return "", err
		}
		sc.Environment = env
		logger.Printf("Using environment map %s\n", opts.EnvMap)
	}
	if opts.Texture != "" {
		tex, err := loaders.LoadTexture(opts.Texture, maxTextureSize)
		if err != nil {
			return "", err
		}
		logger.Printf("Applied %s to %d spheres\n", opts.Texture, retexture(sc, tex))
	}

	path, format, err := opts.outputPath(time.Now())
	if err != nil {
		return "", err
	}

	raytracer, err := renderer.NewRenderer(sc, sc.CameraConfig, opts.applyOverrides(sc.RenderConfig), logger)
	if err != nil {
		return "", err
	}
	fb, stats, err := raytracer.Render(ctx)
	if err != nil {
		return "", err
	}
	logger.Printf("Samples per pixel: %.1f over %d pixels (%d workers)\n",
		stats.AverageSamples(), stats.TotalPixels, stats.Workers)

	img := fb.ToImage()
	if err := output.SaveImage(path, img); err != nil {
		return "", err
	}
	logger.Printf("Render saved as %s\n", path)

	if opts.Thumbnail > 0 {
		thumb := thumbnailPath(path)
		if err := output.SaveImage(thumb, output.Thumbnail(img, opts.Thumbnail)); err != nil {
			return "", err
		}
		logger.Printf("Thumbnail saved as %s\n", thumb)
	}

	if opts.Upload {
		uploader, err := output.NewS3Uploader(output.S3ConfigFromEnv())
		if err != nil {
			return "", err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		url, err := uploader.Upload(ctx, output.RenderKey(opts.SceneID, time.Now(), format), data, format.ContentType())
		if err != nil {
			return "", err
		}
		logger.Printf("Uploaded to %s\n", url)
	}

	return path, nil
}

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if opts.Help {
		return
	}

	if opts.List {
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-8s %s\n", info.ID, info.Description)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Starting Whitted Raytracer...")
	if _, err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
