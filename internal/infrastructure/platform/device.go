// Package platform simulates the device services the registrar depends on:
// permission grants, the location setting, geofencing and interactive prompts.
package platform

import (
	"sort"
	"sync"

	"georeminder/internal/domain/constant"
)

// DeviceState is a snapshot of the simulated device.
type DeviceState struct {
	APILevel          int
	Granted           []constant.Permission
	PermanentlyDenied []constant.Permission
	LocationEnabled   bool
	Resolvable        bool
}

// Device holds the simulated permission and settings state. Safe for concurrent use.
type Device struct {
	mu                sync.RWMutex
	apiLevel          int
	granted           map[constant.Permission]bool
	deniedOnce        map[constant.Permission]bool
	permanentlyDenied map[constant.Permission]bool
	locationEnabled   bool
	resolvable        bool
}

// NewDevice creates a device with nothing granted and location turned on.
func NewDevice(apiLevel int) *Device {
	return &Device{
		apiLevel:          apiLevel,
		granted:           make(map[constant.Permission]bool),
		deniedOnce:        make(map[constant.Permission]bool),
		permanentlyDenied: make(map[constant.Permission]bool),
		locationEnabled:   true,
		resolvable:        true,
	}
}

func (d *Device) APILevel() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.apiLevel
}

func (d *Device) SetAPILevel(level int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.apiLevel = level
}

// BackgroundGated reports whether background location needs its own grant.
func (d *Device) BackgroundGated() bool {
	return d.APILevel() >= constant.BackgroundGateAPILevel
}

// Grant grants perms and clears any earlier denial.
func (d *Device) Grant(perms ...constant.Permission) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range perms {
		d.granted[p] = true
		delete(d.deniedOnce, p)
		delete(d.permanentlyDenied, p)
	}
}

// Revoke removes a grant without recording a denial.
func (d *Device) Revoke(perms ...constant.Permission) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range perms {
		delete(d.granted, p)
	}
}

// Deny records a user denial. The platform then wants a rationale shown.
func (d *Device) Deny(perms ...constant.Permission) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range perms {
		delete(d.granted, p)
		d.deniedOnce[p] = true
	}
}

// DenyPermanently models "don't ask again": requests are refused without a prompt.
func (d *Device) DenyPermanently(perms ...constant.Permission) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range perms {
		delete(d.granted, p)
		d.permanentlyDenied[p] = true
	}
}

func (d *Device) IsGranted(p constant.Permission) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.granted[p]
}

func (d *Device) IsPermanentlyDenied(p constant.Permission) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.permanentlyDenied[p]
}

// ShouldShowRationale is true after a plain denial, false before the first
// request and after a permanent denial.
func (d *Device) ShouldShowRationale(p constant.Permission) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return !d.granted[p] && d.deniedOnce[p] && !d.permanentlyDenied[p]
}

func (d *Device) LocationEnabled() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.locationEnabled
}

func (d *Device) SetLocationEnabled(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.locationEnabled = enabled
}

// Resolvable reports whether the platform offers to turn location on.
func (d *Device) Resolvable() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.resolvable
}

func (d *Device) SetResolvable(resolvable bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resolvable = resolvable
}

// State returns a snapshot of the device.
func (d *Device) State() DeviceState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return DeviceState{
		APILevel:          d.apiLevel,
		Granted:           keys(d.granted),
		PermanentlyDenied: keys(d.permanentlyDenied),
		LocationEnabled:   d.locationEnabled,
		Resolvable:        d.resolvable,
	}
}

func keys(m map[constant.Permission]bool) []constant.Permission {
	out := make([]constant.Permission, 0, len(m))
	for p, ok := range m {
		if ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
