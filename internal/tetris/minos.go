package tetris

var minoShapes = [numKinds][][]bool{
	KindI: {
		{true, true, true, true},
	},
	KindJ: {
		{true, false, false},
		{true, true, true},
	},
	KindL: {
		{false, false, true},
		{true, true, true},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
	},
	KindT: {
		{false, true, false},
		{true, true, true},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
	},
}

// ShapeOf returns a copy of the spawn orientation of kind
func ShapeOf(kind Kind) [][]bool {
	if kind < 0 || kind >= numKinds {
		return nil
	}
	return cloneShape(minoShapes[kind])
}

func cloneShape(shape [][]bool) [][]bool {
	newShape := make([][]bool, len(shape))
	for j := range shape {
		newShape[j] = make([]bool, len(shape[j]))
		copy(newShape[j], shape[j])
	}
	return newShape
}

// minosCloneRotateRight transposes the shape and reverses every row,
// a clockwise turn. A h x w shape becomes w x h.
func minosCloneRotateRight(shape [][]bool) [][]bool {
	height := len(shape)
	if height == 0 {
		return nil
	}
	width := len(shape[0])
	newShape := make([][]bool, width)
	for j := 0; j < width; j++ {
		newShape[j] = make([]bool, height)
		for i := 0; i < height; i++ {
			newShape[j][i] = shape[height-1-i][j]
		}
	}
	return newShape
}

// minosCloneRotateLeft is the exact inverse of minosCloneRotateRight
func minosCloneRotateLeft(shape [][]bool) [][]bool {
	height := len(shape)
	if height == 0 {
		return nil
	}
	width := len(shape[0])
	newShape := make([][]bool, width)
	for j := 0; j < width; j++ {
		newShape[j] = make([]bool, height)
		for i := 0; i < height; i++ {
			newShape[j][i] = shape[i][width-1-j]
		}
	}
	return newShape
}
