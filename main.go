package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"navmesh-planner/pathfinder"
)

type RouteRequest struct {
	MeshID  string           `json:"meshId,omitempty"` // default mesh when empty
	Start   pathfinder.Point `json:"start"`
	End     pathfinder.Point `json:"end"`
	GeoJSON bool             `json:"geojson,omitempty"` // also return the result as a FeatureCollection
}

type RouteResponse struct {
	MeshID     string                     `json:"meshId,omitempty"`
	Path       []pathfinder.Point         `json:"path"`
	Success    bool                       `json:"success"`
	Message    string                     `json:"message,omitempty"`
	Reason     string                     `json:"reason,omitempty"`
	Distance   float64                    `json:"distance,omitempty"`
	Expansions int                        `json:"expansions"`
	Explored   []ExploredCell             `json:"explored"`
	GeoJSON    *geojson.FeatureCollection `json:"geojson,omitempty"`
}

type LoadMeshRequest struct {
	Boxes      [][4]float64    `json:"boxes,omitempty"`
	GeoJSON    json.RawMessage `json:"geojson,omitempty"` // FeatureCollection, one cell per feature bound
	SaveToFile bool            `json:"saveToFile,omitempty"`
}

// planner serves route queries over the registered meshes
type planner struct {
	meshes *meshRegistry
	config plannerConfig
}

func newPlanner(cfg plannerConfig) *planner {
	return &planner{
		meshes: newMeshRegistry(),
		config: cfg,
	}
}

func (p *planner) addMesh(boxes []pathfinder.Box) (string, *pathfinder.Mesh) {
	mesh := pathfinder.NewMesh(boxes)
	id := p.meshes.Add(mesh)
	meshesLoadedTotal.Inc()
	return id, mesh
}

func (p *planner) searchOptions() []pathfinder.Option {
	var options []pathfinder.Option
	if p.config.Search.MaxExpansions > 0 {
		options = append(options, pathfinder.WithMaxExpansions(p.config.Search.MaxExpansions))
	}
	return options
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("⚠️  Failed to encode response: %v\n", err)
	}
}

// POST /route - Compute a path between two points of a mesh
func (p *planner) routeHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Route request received")
	defer log.Println("========================================")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		routeRequestsTotal.WithLabelValues("bad_request").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	mesh, meshID, ok := p.meshes.Get(req.MeshID)
	if !ok {
		log.Printf("❌ Mesh not available: %q\n", req.MeshID)
		routeRequestsTotal.WithLabelValues("bad_request").Inc()
		http.Error(w, "Mesh not loaded. Call /loadMesh first", http.StatusBadRequest)
		return
	}

	log.Printf("   Mesh:  %s (%d cells)\n", meshID, mesh.Len())
	log.Printf("   Start: (%.6f, %.6f)\n", req.Start.X, req.Start.Y)
	log.Printf("   End:   (%.6f, %.6f)\n", req.End.X, req.End.Y)

	log.Println("🔍 Running bidirectional search on mesh...")
	started := time.Now()
	result, err := pathfinder.FindPath(req.Start, req.End, mesh, p.searchOptions()...)
	elapsed := time.Since(started)

	response := RouteResponse{
		MeshID:     meshID,
		Path:       result.Path,
		Success:    err == nil,
		Distance:   result.Cost,
		Expansions: result.Expansions,
		Explored:   exploredCells(mesh, result.Explored),
	}
	if response.Path == nil {
		response.Path = []pathfinder.Point{}
	}
	if req.GeoJSON {
		response.GeoJSON = routeFeatureCollection(mesh, result)
	}

	if err != nil {
		reason := pathfinder.ReasonOf(err)
		observeRoute(reason.String(), elapsed, result.Expansions)
		response.Reason = reason.String()
		response.Message = routeFailureMessage(reason)
		log.Printf("❌ No path: %s\n", response.Message)
	} else {
		observeRoute("found", elapsed, result.Expansions)
		log.Printf("✅ Path found with %d waypoints through %d cells\n", len(result.Path), len(result.Cells))
		log.Printf("   Distance: %.4f\n", result.Cost)
		log.Printf("   Expanded %d cells in %s\n", result.Expansions, elapsed)
	}

	writeJSON(w, http.StatusOK, response)
}

func routeFailureMessage(reason pathfinder.Reason) string {
	switch reason {
	case pathfinder.ReasonSourceOutside:
		return "Start point is not inside any mesh cell"
	case pathfinder.ReasonDestinationOutside:
		return "End point is not inside any mesh cell"
	case pathfinder.ReasonDisconnected:
		return "No connected sequence of cells joins start and end"
	case pathfinder.ReasonSearchLimit:
		return "Search stopped at the configured expansion limit"
	default:
		return "No path found"
	}
}

// POST /loadMesh - Register a mesh given as boxes or as GeoJSON
func (p *planner) loadMeshHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("🗺️  Load mesh request received")
	defer log.Println("========================================")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoadMeshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var boxes []pathfinder.Box
	var err error
	if len(req.GeoJSON) > 0 {
		boxes, err = parseGeoJSONMesh(req.GeoJSON)
	} else {
		boxes, err = boxesFromTuples(req.Boxes)
	}
	if err != nil {
		log.Printf("❌ Invalid mesh: %v\n", err)
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	id, mesh := p.addMesh(boxes)
	log.Printf("✅ Mesh %s registered with %d cells\n", id, mesh.Len())

	if req.SaveToFile {
		if err := saveMeshFile(boxes, p.config.Mesh.SaveFile); err != nil {
			log.Printf("⚠️  Failed to save mesh: %v\n", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"meshId":   id,
		"numCells": mesh.Len(),
	})
}

// GET /mesh?id=&format=geojson - Get the cells of a mesh
func (p *planner) meshHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mesh, id, ok := p.meshes.Get(r.URL.Query().Get("id"))
	if !ok {
		http.Error(w, "Mesh not loaded", http.StatusNotFound)
		return
	}

	if r.URL.Query().Get("format") == "geojson" {
		writeJSON(w, http.StatusOK, meshFeatureCollection(mesh))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"meshId":   id,
		"numCells": mesh.Len(),
		"boxes":    tuplesFromBoxes(mesh.Boxes()),
	})
}

// GET /health - Health check endpoint
func (p *planner) healthHandler(w http.ResponseWriter, r *http.Request) {
	numMeshes := p.meshes.Len()

	status := "ready"
	if numMeshes == 0 {
		status = "waiting for mesh"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        status,
		"numMeshes":     numMeshes,
		"defaultMeshId": p.meshes.DefaultID(),
	})
}

func (p *planner) routes() *http.ServeMux {
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		if p.config.Server.EnableCORS {
			return corsMiddleware(h)
		}
		return h
	}

	limiter := newRouteLimiter(p.config.Server)

	mux := http.NewServeMux()
	mux.HandleFunc("/route", wrap(rateLimitMiddleware(limiter, p.routeHandler)))
	mux.HandleFunc("/loadMesh", wrap(p.loadMeshHandler))
	mux.HandleFunc("/mesh", wrap(p.meshHandler))
	mux.HandleFunc("/health", wrap(p.healthHandler))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

type cliArgs struct {
	configFile  string
	initConfig  bool
	printSchema bool
}

func parseCliArgs() cliArgs {
	configFile := flag.String("config", "planner.yaml", "Configuration file for the planner service")
	initConfig := flag.Bool("initConfig", false, "Write a default configuration to the -config path, then exit.")
	printSchema := flag.Bool("printSchema", false, "Print the JSON Schema of the mesh file format, then exit.")

	flag.Parse()

	return cliArgs{
		configFile:  *configFile,
		initConfig:  *initConfig,
		printSchema: *printSchema,
	}
}

func loadConfig(filename string) (plannerConfig, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		log.Printf("ℹ️  No config file at %s, using defaults\n", filename)
		return cfg, nil
	}
	if err := (&cfg).DeserializeFromFile(filename); err != nil {
		return cfg, err
	}
	log.Printf("✅ Loaded config from %s\n", filename)
	return cfg, nil
}

func main() {
	args := parseCliArgs()

	if args.printSchema {
		schema, err := meshFileSchema()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(schema))
		return
	}

	if args.initConfig {
		if err := defaultConfig().SerializeToFile(args.configFile); err != nil {
			log.Fatal(err)
		}
		log.Printf("✅ Default config written to %s\n", args.configFile)
		return
	}

	log.Println("========================================")
	log.Println("🚀 Navmesh Planner Server")
	log.Println("========================================")

	cfg, err := loadConfig(args.configFile)
	if err != nil {
		log.Fatal(err)
	}

	p := newPlanner(cfg)

	if cfg.Mesh.File != "" {
		boxes, err := loadMeshFile(cfg.Mesh.File)
		if err != nil {
			log.Fatal(err)
		}
		id, mesh := p.addMesh(boxes)
		log.Printf("✅ Default mesh %s: %d cells\n", id, mesh.Len())
	} else {
		log.Println("ℹ️  No mesh configured (this is normal on first run)")
		log.Println("   Call /loadMesh to register one")
	}
	log.Println("")

	limit := "unlimited"
	if cfg.Server.RouteRateLimit > 0 {
		limit = strconv.FormatFloat(cfg.Server.RouteRateLimit, 'f', -1, 64) + " req/s"
	}

	log.Printf("Server starting on %s\n", cfg.Server.ListenAddress)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /loadMesh   - Register a mesh (boxes or GeoJSON)")
	log.Println("  GET  /mesh       - Get mesh cells (?id=, ?format=geojson)")
	log.Printf("  POST /route      - Compute route with start and end points (%s)\n", limit)
	log.Println("  GET  /health     - Check server status")
	log.Println("  GET  /metrics    - Prometheus metrics")
	log.Println("")
	if cfg.Server.EnableCORS {
		log.Println("CORS enabled for all origins")
	}
	log.Println("========================================")
	log.Println("")

	if err := http.ListenAndServe(cfg.Server.ListenAddress, p.routes()); err != nil {
		log.Fatal(err)
	}
}
