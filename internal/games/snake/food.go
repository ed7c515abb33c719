package snake

import (
	"math/rand"
	"time"
)

// maxSpawnAttempts bounds the random search for a free cell.
const maxSpawnAttempts = 100

// Food is the single live food item on the board.
type Food struct {
	grid      Grid
	catalog   *Catalog
	position  Point
	kind      FoodType
	spawnedAt time.Time
}

// NewFood creates an unspawned food for the grid.
func NewFood(grid Grid, catalog *Catalog) *Food {
	return &Food{grid: grid, catalog: catalog}
}

// Spawn places the food on a random cell not in occupied and picks its
// type from the catalog. After maxSpawnAttempts collisions the last
// sampled cell is accepted anyway and Spawn returns false.
func (f *Food) Spawn(occupied []Point, rng *rand.Rand, now time.Time) bool {
	taken := make(map[Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	placed := false
	var cell Point
	for range maxSpawnAttempts {
		cell = f.grid.RandomCell(rng)
		if _, hit := taken[cell]; !hit {
			placed = true
			break
		}
	}

	f.position = cell
	f.kind = f.catalog.SelectFood(rng)
	f.spawnedAt = now
	return placed
}

// IsEaten reports whether the head is on the food.
func (f *Food) IsEaten(head Point) bool {
	return head == f.position
}

// Position returns the food's cell.
func (f *Food) Position() Point {
	return f.position
}

// Type returns the food's type.
func (f *Food) Type() FoodType {
	return f.kind
}

// SpawnedAt returns when the food appeared.
func (f *Food) SpawnedAt() time.Time {
	return f.spawnedAt
}
