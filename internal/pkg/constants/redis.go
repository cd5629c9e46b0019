package constants

// Redis key patterns
const (
	// KeyParkingSpot caches a spot by id: parking:spot:{spotID}
	KeyParkingSpot = "parking:spot:%s"
	// KeyParkingSpotFence blocks re-caching right after an invalidation: parking:spot:{spotID}:fence
	KeyParkingSpotFence = "parking:spot:%s:fence"
)
