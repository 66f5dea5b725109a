package main

import (
	"sync"

	"github.com/google/uuid"

	"navmesh-planner/pathfinder"
)

// meshRegistry holds every loaded mesh by id. The most recently added mesh
// is the default for route requests that do not name one.
type meshRegistry struct {
	mu        sync.RWMutex
	meshes    map[string]*pathfinder.Mesh
	defaultID string
}

func newMeshRegistry() *meshRegistry {
	return &meshRegistry{meshes: make(map[string]*pathfinder.Mesh)}
}

// Add stores mesh under a fresh id and makes it the default
func (r *meshRegistry) Add(mesh *pathfinder.Mesh) string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.meshes[id] = mesh
	r.defaultID = id
	return id
}

// Get looks up a mesh; an empty id selects the default mesh
func (r *meshRegistry) Get(id string) (*pathfinder.Mesh, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id == "" {
		id = r.defaultID
	}
	mesh, ok := r.meshes[id]
	return mesh, id, ok
}

func (r *meshRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.meshes)
}

func (r *meshRegistry) DefaultID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultID
}
