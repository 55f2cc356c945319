// Package diff parsea patches en formato unificado tal como los devuelve
// la API de GitHub, y mapea líneas del archivo a posiciones del patch.
package diff

import (
	"regexp"
	"sort"
	"strings"
)

var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Hunk es un bloque contiguo de líneas del patch, con su header.
type Hunk struct {
	Header   string
	NewStart int
	Lines    []string
}

// FilePatch es el resultado de parsear el patch de un archivo.
type FilePatch struct {
	Hunks     []Hunk
	positions map[int]int
	added     map[int]bool
}

// Parse procesa un patch unificado. La primera línea debajo del primer
// header @@ es la posición 1, y los headers siguientes también cuentan,
// que es la numeración que espera la API de review comments de GitHub.
func Parse(patch string) *FilePatch {
	fp := &FilePatch{
		positions: make(map[int]int),
		added:     make(map[int]bool),
	}

	if patch == "" {
		return fp
	}

	position := 0
	currentLine := 0
	inHunk := false
	var current *Hunk

	for _, line := range strings.Split(patch, "\n") {
		if m := hunkHeaderRe.FindStringSubmatch(line); m != nil {
			if inHunk {
				position++
			}
			inHunk = true
			currentLine = atoi(m[3])
			if current != nil {
				fp.Hunks = append(fp.Hunks, *current)
			}
			current = &Hunk{Header: line, NewStart: currentLine}
			continue
		}

		if !inHunk {
			continue
		}

		position++
		current.Lines = append(current.Lines, line)

		// Las líneas removidas no existen en el archivo nuevo.
		if strings.HasPrefix(line, "-") {
			continue
		}
		fp.positions[currentLine] = position
		if strings.HasPrefix(line, "+") {
			fp.added[currentLine] = true
		}
		currentLine++
	}

	if current != nil {
		fp.Hunks = append(fp.Hunks, *current)
	}
	return fp
}

// Position retorna la posición en el patch para una línea del archivo nuevo.
func (fp *FilePatch) Position(line int) (int, bool) {
	pos, ok := fp.positions[line]
	return pos, ok
}

// IsAdded indica si la línea pertenece a un rango agregado por el diff.
func (fp *FilePatch) IsAdded(line int) bool {
	return fp.added[line]
}

// MappedLines retorna las líneas del archivo presentes en el patch, ordenadas.
func (fp *FilePatch) MappedLines() []int {
	lines := make([]int, 0, len(fp.positions))
	for l := range fp.positions {
		lines = append(lines, l)
	}
	sort.Ints(lines)
	return lines
}

// ClosestLine busca la línea mapeada más cercana al target dentro de
// maxDistance. Retorna false si ninguna queda lo suficientemente cerca.
func (fp *FilePatch) ClosestLine(target, maxDistance int) (int, bool) {
	if _, ok := fp.positions[target]; ok {
		return target, true
	}

	lines := fp.MappedLines()
	if len(lines) == 0 {
		return 0, false
	}

	closest := lines[0]
	for _, l := range lines[1:] {
		if abs(l-target) < abs(closest-target) {
			closest = l
		}
	}

	if abs(closest-target) <= maxDistance {
		return closest, true
	}
	return 0, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
