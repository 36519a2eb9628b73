package constant

// Permission is a platform capability the registrar may need.
type Permission string

const (
	PermissionFineLocation       Permission = "ACCESS_FINE_LOCATION"
	PermissionCoarseLocation     Permission = "ACCESS_COARSE_LOCATION"
	PermissionBackgroundLocation Permission = "ACCESS_BACKGROUND_LOCATION"
)

// ForegroundPermissions must be granted together.
var ForegroundPermissions = []Permission{PermissionFineLocation, PermissionCoarseLocation}

// BackgroundGateAPILevel is the first platform API level that grants background
// location separately from foreground location.
const BackgroundGateAPILevel = 29
