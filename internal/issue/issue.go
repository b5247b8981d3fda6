// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	NoPluginsFoundId Id = iota + 1
	CatalogNotFoundId
	CatalogParseErrorId
	ProjectParseErrorId
	StoreCorruptId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

// Issue is a well-known failure situation with a markdown help card the CLI
// renders when the situation occurs.
type Issue struct {
	id       Id
	mdMsg    MarkdownMsg
	docLinks []HttpLink
	extLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	noPluginsFoundIssue = &Issue{
		id: NoPluginsFoundId,
		mdMsg: `
# No plugins found!

We walked every known plugin directory and found nothing to inventory.

## Search locations (in scan order):
1. Platform default directories (VST2/VST3/AU)
2. Extra directories from your config file

## Things you can try:
- Check which directories were scanned:
~~~
$ plugscan scan --verbose
~~~

- Add your plugin directories to the config:
~~~cue
scan: {
	vst3_dirs: ["D:/Audio/VST3"]
}
~~~`,
	}

	catalogNotFoundIssue = &Issue{
		id: CatalogNotFoundId,
		mdMsg: `
# No metadata catalog found!

The inventory was built, but without a catalog every plugin falls back to
heuristic classification.

## Things you can try:
- Point the config at your curated catalog document:
~~~cue
catalog_path: "~/.config/plugscan/catalog.yaml"
~~~

- Generate curation templates for everything that is missing:
~~~
$ plugscan missing > templates.yaml
~~~`,
	}

	catalogParseErrorIssue = &Issue{
		id: CatalogParseErrorId,
		mdMsg: `
# Failed to parse the metadata catalog!

The catalog document exists but is not valid YAML, or its records do not
match the expected fields.

## Expected record shape:
~~~yaml
serum:
  name: Serum
  vendor: Xfer Records
  category: Synthesizer
  subcategory: Wavetable
  tags: [synth, wavetable]
  website: https://xferrecords.com/products/serum
  price: "$189"
  popularity: 98
  releaseYear: 2014
~~~

## Things you can try:
- Validate the YAML syntax
- Re-run with verbose mode for the exact position:
~~~
$ plugscan --verbose scan
~~~`,
	}

	projectParseErrorIssue = &Issue{
		id: ProjectParseErrorId,
		mdMsg: `
# Failed to read a project file!

One or more project files could not be decoded. Each unreadable project is
skipped; the rest of the batch is still processed.

## Common causes:
- The file is not a project file (wrong extension match)
- The file is truncated or was saved by an unsupported version
- Permission denied

## Things you can try:
- Re-run with verbose mode to see which files were skipped:
~~~
$ plugscan --verbose projects ~/Music
~~~`,
	}

	storeCorruptIssue = &Issue{
		id: StoreCorruptId,
		mdMsg: `
# The inventory store is corrupt!

The persisted snapshot failed its checksum verification. The store is
replaced wholesale on every scan, so the fix is a re-scan.

## Things you can try:
~~~
$ plugscan scan
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file contains syntax errors or values that do not match the
schema. plugscan continued with defaults.

## Things you can try:
- Show the effective configuration:
~~~
$ plugscan config show
~~~

- Recreate a default config file:
~~~
$ plugscan config init
~~~`,
	}

	issues = map[Id]*Issue{
		noPluginsFoundIssue.Id():    noPluginsFoundIssue,
		catalogNotFoundIssue.Id():   catalogNotFoundIssue,
		catalogParseErrorIssue.Id(): catalogParseErrorIssue,
		projectParseErrorIssue.Id(): projectParseErrorIssue,
		storeCorruptIssue.Id():      storeCorruptIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
