// Package aoc is a small harness and helper library for solving
// Advent of Code puzzles. Solvers are methods named D{day}p{part} on a
// struct embedding *Puzzle; each method's doc comment carries the
// sample input and the expected sample answer.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples parses every .go file in src and collects the
// want=/input sample from each function's doc comment. A sample without
// its own input block inherits the input of the previous sampled
// function in the same file, so part 2 can reuse part 1's input.
func extractSamples(src fs.FS) map[string]sample {
	files := MustGet(fs.Glob(src, "*.go"))
	slices.Sort(files)

	samples := make(map[string]sample)
	for _, name := range files {
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, name, MustGet(fs.ReadFile(src, name)), parser.ParseComments)
		if err != nil {
			log.Fatalf("parsing %s to extract samples: %v", name, err)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if !ok {
					continue
				}
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// Puzzle is the per-run context handed to a solver method. When
// SampleMode is set, Input returns the embedded sample instead of the
// real puzzle input.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) Description() []byte {
	return fileOrFetch(cachePath(p.year, p.day.day, "html"), fmt.Sprintf("https://adventofcode.com/%d/day/%d", p.year, p.day.day))
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.sample().input)
	}
	return fileOrFetch(cachePath(p.year, p.day.day, "input"), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// Lines returns the input split into lines.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) { lines = append(lines, line) })
	return lines
}

// Paragraphs returns the input split on blank lines, each paragraph a
// slice of lines.
func (p *Puzzle) Paragraphs() [][]string {
	var paras [][]string
	var cur []string
	p.ForLines(func(line string) {
		if line == "" {
			if len(cur) > 0 {
				paras = append(paras, cur)
				cur = nil
			}
			return
		}
		cur = append(cur, line)
	})
	if len(cur) > 0 {
		paras = append(paras, cur)
	}
	return paras
}

// ForLinesY calls onLine for each line of input. The y value is the row
// number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return s
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part}
// for each day/part. The methods take no arguments and return the
// answer as any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m := v.Method(i).Interface().(func() any)
		d, part := Int(matches[1]), matches[2]
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
}

var initFlags = sync.OnceFunc(flag.Parse)

func runDay(slvr any, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		_, hasSample := samples[ps.Name]

		for _, sm := range []bool{true, false} {
			if sm && (!hasSample || flagSkipSample) {
				continue
			} else if !sm && flagOnlySample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// Run discovers the solver's day/part methods, checks each part against
// its embedded sample, and runs the real inputs. src holds the solver's
// own source files so samples can be read out of the doc comments.
func Run(year int, src fs.FS, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

func cachePath(year, day int, ext string) string {
	return filepath.Join(cacheDir(), fmt.Sprintf("%d/%d.%s", year, day, ext))
}

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req
}

func doRequest(req *http.Request) *http.Response {
	res := MustGet(http.DefaultClient.Do(req))
	if res.StatusCode != 200 {
		log.Fatalf("bad status fetching %s: %v", req.URL, res.Status)
	}
	return res
}

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	res := doRequest(request("GET", url, nil))
	defer res.Body.Close()
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Fatalf("bad prefix: %q", s)
	}
	return s1
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
