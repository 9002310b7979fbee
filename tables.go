package fix

import (
	"math"
	"sync"
	"time"
)

// Lookup table sizes.
const (
	// CosTableSize is the number of cosine samples over one full turn
	// (step 2π/512, or half a binary degree).
	CosTableSize = 512

	// TanTableSize is the number of tangent samples over one half turn
	// (step π/256).
	TanTableSize = 256

	// AcosTableSize is the number of arccosine samples over [-1, 1]
	// (step 1/256, both ends included).
	AcosTableSize = 513
)

// Index arithmetic shared by the angle tables: one entry per 0x8000
// (half a binary degree), rounded to nearest by a 0x4000 bias.
const (
	angleStep = 0x8000
	angleBias = 0x4000

	acosStep = 0x100
	acosBias = 127
)

// trigTables holds the generated lookup tables. It is never modified
// after buildTables returns.
type trigTables struct {
	cos  [CosTableSize]Fixed
	tan  [TanTableSize]Fixed
	acos [AcosTableSize]Fixed
}

var (
	tablesOnce sync.Once
	tables     *trigTables
)

// loadTables returns the shared tables, generating them on first use.
func loadTables() *trigTables {
	tablesOnce.Do(func() {
		start := time.Now()
		tables = buildTables()
		Logger().Debug("fix: trig tables generated",
			"cos", CosTableSize,
			"tan", TanTableSize,
			"acos", AcosTableSize,
			"elapsed", time.Since(start))
	})
	return tables
}

// buildTables computes every entry through FromFloat. The tangent entry
// at π/2 saturates to MaxFixed; that fault is not reported to any caller.
func buildTables() *trigTables {
	t := &trigTables{}
	for i := range t.cos {
		t.cos[i], _ = FromFloat(math.Cos(float64(i) * 2 * math.Pi / CosTableSize))
	}
	for i := range t.tan {
		t.tan[i], _ = FromFloat(math.Tan(float64(i) * math.Pi / TanTableSize))
	}
	for i := range t.acos {
		v := -1.0 + float64(i)*(2.0/(AcosTableSize-1))
		t.acos[i], _ = FromFloat(math.Acos(v) * radToAngle)
	}
	return t
}

// angleIndex maps an angle to its table slot:
//
//	floor((x + 0x4000) / 0x8000) mod size
//
// The division floors toward negative infinity and the modulus is
// Euclidean, which matches ((x + 0x4000) >> 15) & (size - 1) for every
// int32 x.
func angleIndex(x int64, size int64) int {
	n := x + angleBias
	q := n / angleStep
	if n%angleStep != 0 && n < 0 {
		q--
	}
	r := q % size
	if r < 0 {
		r += size
	}
	return int(r)
}

// acosIndex maps x in [-One, One] to its arccosine table slot.
func acosIndex(x Fixed) int {
	return int((int64(x) + int64(One) + acosBias) / acosStep)
}

// CosTable returns a copy of the cosine table.
// Entry i holds cos(i * 2π/512).
func CosTable() [CosTableSize]Fixed {
	return loadTables().cos
}

// TanTable returns a copy of the tangent table.
// Entry i holds tan(i * π/256); entry 128 is MaxFixed.
func TanTable() [TanTableSize]Fixed {
	return loadTables().tan
}

// AcosTable returns a copy of the arccosine table.
// Entry i holds acos(-1 + i/256) in binary angle units.
func AcosTable() [AcosTableSize]Fixed {
	return loadTables().acos
}
