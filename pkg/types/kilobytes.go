package types

import "fmt"

// KiloBytes is a uint64 wrapper representing a size in kilobytes,
// the unit /proc reports memory in.
type KiloBytes uint64

// String renders the value with two decimals and a binary unit step:
// kilobytes below 1024, megabytes below 1024^2, gigabytes above.
func (k KiloBytes) String() string {
	v := float64(k)
	switch {
	case k >= 1<<20:
		return fmt.Sprintf("%.2fG", v/(1<<20))
	case k >= 1<<10:
		return fmt.Sprintf("%.2fM", v/(1<<10))
	default:
		return fmt.Sprintf("%.2fK", v)
	}
}

// MB returns the number of megabytes (1024 base).
func (k KiloBytes) MB() float64 { return float64(k) / 1024 }

// GB returns the number of gigabytes (1024 base).
func (k KiloBytes) GB() float64 { return float64(k) / (1024 * 1024) }
