package internal

// envID addresses a frame in an envArena
type envID int

const (
	noEnv     envID = -1
	globalEnv envID = 0
)

type frame struct {
	parent envID
	values map[string]value

	// pinned frames are referenced by a closure and are never released
	pinned bool
	live   bool
}

// envArena owns every frame. Frames refer to their parent by index, so
// closures only need to keep an envID. Frames captured by a closure are
// pinned together with their ancestors, every other frame goes back to
// the free list when the block or call that pushed it is done.
type envArena struct {
	frames []frame
	free   []envID
}

func newEnvArena() *envArena {
	a := &envArena{}
	a.frames = append(a.frames, frame{
		parent: noEnv,
		values: make(map[string]value),
		pinned: true,
		live:   true,
	})
	return a
}

func (a *envArena) push(parent envID) envID {
	f := frame{
		parent: parent,
		values: make(map[string]value),
		live:   true,
	}
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.frames[id] = f
		return id
	}
	a.frames = append(a.frames, f)
	return envID(len(a.frames) - 1)
}

func (a *envArena) release(id envID) {
	f := &a.frames[id]
	if f.pinned || !f.live {
		return
	}
	f.live = false
	f.values = nil
	a.free = append(a.free, id)
}

// pin keeps id and all of its ancestors alive for good
func (a *envArena) pin(id envID) {
	for id != noEnv && !a.frames[id].pinned {
		a.frames[id].pinned = true
		id = a.frames[id].parent
	}
}

func (a *envArena) define(id envID, name string, v value) {
	a.frames[id].values[name] = v
}

func (a *envArena) ancestor(id envID, depth int) envID {
	for i := 0; i < depth && id != noEnv; i++ {
		id = a.frames[id].parent
	}
	return id
}

func (a *envArena) getAt(id envID, depth int, name string) (value, bool) {
	target := a.ancestor(id, depth)
	if target == noEnv {
		return nil, false
	}
	v, ok := a.frames[target].values[name]
	return v, ok
}

func (a *envArena) assignAt(id envID, depth int, name string, v value) bool {
	target := a.ancestor(id, depth)
	if target == noEnv {
		return false
	}
	if _, ok := a.frames[target].values[name]; !ok {
		return false
	}
	a.frames[target].values[name] = v
	return true
}

// live returns the number of frames currently in use
func (a *envArena) live() int {
	return len(a.frames) - len(a.free)
}
