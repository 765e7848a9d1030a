package project

import (
	"github.com/minio/highwayhash"
)

var clusterKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// clusterID derives a stable graph cluster identifier from a unit path.
func clusterID(path string) uint64 {
	hash, err := highwayhash.New64(clusterKey)
	if err != nil {
		return 0
	}
	_, _ = hash.Write([]byte(path))
	return hash.Sum64()
}
