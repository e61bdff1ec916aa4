package filedeps

// FormatSpec is the declarative Format implementation: a fluent description of
// which properties of a manifest declare file dependencies, assembled into the
// Dependencies tree in declaration order.
//
//	spec := filedeps.NewFormat("build").
//		Single("source").Required().
//		Multi("data/items").
//		Objects("modules", "path").Required().
//		Nested("child", childSpec).
//		Spec()
//
// Dependencies are optional unless marked Required.
type FormatSpec struct {
	name  string
	steps []formatStep
}

type stepKind int

const (
	stepSingle stepKind = iota
	stepMulti
	stepObjects
	stepNested
)

type formatStep struct {
	kind      stepKind
	path      string
	fileField string
	required  bool
	sub       *FormatSpec
}

// stepRef lets the fluent chain mark the step it just added and keep building.
type stepRef struct {
	f *FormatSpec
}

// NewFormat starts a FormatSpec; name becomes the root Dependencies name.
func NewFormat(name string) *FormatSpec {
	return &FormatSpec{name: name}
}

// Name returns the root Dependencies name this spec produces.
func (f *FormatSpec) Name() string { return f.name }

// Spec returns the spec itself, so chains end uniformly whether the last step
// was marked Required or not.
func (f *FormatSpec) Spec() *FormatSpec { return f }

func (f *FormatSpec) add(s formatStep) stepRef {
	f.steps = append(f.steps, s)
	return stepRef{f: f}
}

// Single declares a single-file dependency at the given property path.
func (f *FormatSpec) Single(path string) stepRef {
	return f.add(formatStep{kind: stepSingle, path: path})
}

// Multi declares an array-of-file-names dependency at the given property path.
func (f *FormatSpec) Multi(path string) stepRef {
	return f.add(formatStep{kind: stepMulti, path: path})
}

// Objects declares an array-of-objects dependency: each element of the array
// at arrayPath carries its file name in fileField.
func (f *FormatSpec) Objects(arrayPath, fileField string) stepRef {
	return f.add(formatStep{kind: stepObjects, path: arrayPath, fileField: fileField})
}

// Nested declares a sub-tree: the object at path is validated with sub, and
// the result becomes a child Dependencies node named after sub. An optional
// nested step is skipped when the property is absent.
func (f *FormatSpec) Nested(path string, sub *FormatSpec) stepRef {
	return f.add(formatStep{kind: stepNested, path: path, sub: sub})
}

// Required marks the step just added as required and continues the chain.
func (r stepRef) Required() *FormatSpec {
	r.f.steps[len(r.f.steps)-1].required = true
	return r.f
}

// Optional marks the step just added as optional (the default).
func (r stepRef) Optional() *FormatSpec { return r.f }

// Spec ends the chain, returning the built FormatSpec.
func (r stepRef) Spec() *FormatSpec { return r.f }

// Forwarders so a chain can continue right after Single/Multi/Objects/Nested
// without marking the step.
func (r stepRef) Single(path string) stepRef { return r.f.Single(path) }
func (r stepRef) Multi(path string) stepRef  { return r.f.Multi(path) }
func (r stepRef) Objects(arrayPath, fileField string) stepRef {
	return r.f.Objects(arrayPath, fileField)
}
func (r stepRef) Nested(path string, sub *FormatSpec) stepRef { return r.f.Nested(path, sub) }
func (r stepRef) Dependencies(v *Validator, root Node, manifestPath string) Result[*Dependencies, *ValidationError] {
	return r.f.Dependencies(v, root, manifestPath)
}

// Dependencies implements Format: steps run in declaration order, depth first,
// and the first failure aborts the whole pass.
func (f *FormatSpec) Dependencies(v *Validator, root Node, manifestPath string) Result[*Dependencies, *ValidationError] {
	d := &Dependencies{Name: f.name}
	for _, step := range f.steps {
		switch step.kind {
		case stepSingle:
			one := v.SingleFileDep(root, step.path, manifestPath, !step.required)
			if one.IsFailure() {
				return Fail[*Dependencies](one.Err())
			}
			d.SingleFiles = append(d.SingleFiles, one.Value())

		case stepMulti:
			many := v.MultipleFilesDep(root, step.path, manifestPath, !step.required)
			if many.IsFailure() {
				return Fail[*Dependencies](many.Err())
			}
			d.MultipleFiles = append(d.MultipleFiles, many.Value())

		case stepObjects:
			objs := v.FileObjectsDep(root, step.path, step.fileField, manifestPath, !step.required)
			if objs.IsFailure() {
				return Fail[*Dependencies](objs.Err())
			}
			d.SingleFiles = append(d.SingleFiles, objs.Value()...)

		case stepNested:
			child, ok := root.Child(step.path)
			if !ok {
				if !step.required {
					continue
				}
				loc := v.Locate(root, step.path, manifestPath)
				return Fail[*Dependencies](loc.Err())
			}
			sub := step.sub.Dependencies(v, child, manifestPath)
			if sub.IsFailure() {
				return Fail[*Dependencies](sub.Err())
			}
			d.Subdependencies = append(d.Subdependencies, sub.Value())
		}
	}
	return Ok[*Dependencies, *ValidationError](d)
}
