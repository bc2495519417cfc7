package main

import (
	"strings"

	aoc "aoc2024"
)

/*
want=1928

2333133121414131402
*/
func (s solver) D9p1() any {
	disk := expandDisk(s.diskMap())
	i, j := 0, len(disk)-1
	for i < j {
		switch {
		case disk[i] != -1:
			i++
		case disk[j] == -1:
			j--
		default:
			disk[i], disk[j] = disk[j], -1
		}
	}
	return diskChecksum(disk)
}

// want=2858
func (s solver) D9p2() any {
	type span struct{ start, size int }
	var files, frees []span
	pos := 0
	for i, n := range s.diskMap() {
		if i%2 == 0 {
			files = append(files, span{pos, n})
		} else if n > 0 {
			frees = append(frees, span{pos, n})
		}
		pos += n
	}

	sum := 0
	for id := len(files) - 1; id >= 0; id-- {
		f := files[id]
		for i := range frees {
			fr := &frees[i]
			if fr.start >= f.start {
				break
			}
			if fr.size < f.size {
				continue
			}
			f.start = fr.start
			fr.start += f.size
			fr.size -= f.size
			break
		}
		for i := 0; i < f.size; i++ {
			sum += (f.start + i) * id
		}
	}
	return sum
}

func (s solver) diskMap() []int {
	return aoc.Digits(strings.TrimSpace(string(s.Input())))
}

// expandDisk lays the map out block by block, -1 marking free space.
func expandDisk(sizes []int) []int {
	var disk []int
	for i, n := range sizes {
		id := -1
		if i%2 == 0 {
			id = i / 2
		}
		for ; n > 0; n-- {
			disk = append(disk, id)
		}
	}
	return disk
}

func diskChecksum(disk []int) int {
	sum := 0
	for i, id := range disk {
		if id != -1 {
			sum += i * id
		}
	}
	return sum
}
