// Package f32 implements the few float32 vector operations needed for
// regret accumulation.
package f32

// Add is
//  for i, v := range s {
//  	dst[i] += v
//  }
func Add(dst, s []float32) {
	for i, v := range s {
		dst[i] += v
	}
}

// AxpyUnitary is
//  for i, v := range x {
//  	y[i] += alpha * v
//  }
func AxpyUnitary(alpha float32, x, y []float32) {
	for i, v := range x {
		y[i] += alpha * v
	}
}

// ScalUnitary is
//  for i := range x {
//  	x[i] *= alpha
//  }
func ScalUnitary(alpha float32, x []float32) {
	for i := range x {
		x[i] *= alpha
	}
}

// Fill is
//  for i := range x {
//  	x[i] = alpha
//  }
func Fill(alpha float32, x []float32) {
	for i := range x {
		x[i] = alpha
	}
}

// ClampNonNegative is
//  for i, v := range s {
//  	dst[i] = max(v, 0)
//  }
func ClampNonNegative(dst, s []float32) {
	for i, v := range s {
		if v > 0 {
			dst[i] = v
		} else {
			dst[i] = 0
		}
	}
}

// Sum is
//  var sum float32
//  for i := range x {
//      sum += x[i]
//  }
func Sum(x []float32) float32 {
	var sum float32
	for _, v := range x {
		sum += v
	}
	return sum
}
