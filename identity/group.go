package identity

import (
	"sort"

	"github.com/TopiaNetwork/signer/derivation"
	"github.com/TopiaNetwork/signer/networkspec"
)

const IdentityRootTitle = "Identity root"

// PathGroup is a titled set of sibling paths shown together.
type PathGroup struct {
	Title string
	Paths []string
}

// GroupPaths partitions paths into display groups.
//
// A path under a network root (//kusama//funding/1) is grouped by the first
// junction below that root (//funding); any other path by its own first
// junction. The identity root and bare network roots get their own labelled
// groups. Members are sorted, and groups are stably ordered singletons first
// (shorter path first) followed by the multi-member groups by size.
func GroupPaths(paths []string, registry *networkspec.Registry) []PathGroup {
	groups := make([]PathGroup, 0)
	index := make(map[string]int)

	insert := func(title, path string) {
		if i, ok := index[title]; ok {
			groups[i].Paths = append(groups[i].Paths, path)
			sort.Strings(groups[i].Paths)
			return
		}
		index[title] = len(groups)
		groups = append(groups, PathGroup{Title: title, Paths: []string{path}})
	}

	for _, raw := range paths {
		p := derivation.Parse(raw)
		switch p.Kind {
		case derivation.KindRoot:
			groups = append(groups, PathGroup{Title: IdentityRootTitle, Paths: []string{raw}})
			continue
		case derivation.KindEthereum:
			insert(raw, raw)
			continue
		}

		first, _ := p.FirstSegment()
		spec, isNetworkRoot := networkOfRoot(first, registry)
		if !isNetworkRoot {
			insert(first.String(), raw)
			continue
		}
		if p.Depth() == 1 {
			groups = append(groups, PathGroup{Title: spec.Title + " root", Paths: []string{raw}})
			continue
		}
		sub, _ := p.Tail().FirstSegment()
		insert(sub.String(), raw)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if len(a.Paths) == 1 && len(b.Paths) == 1 {
			return len(a.Paths[0]) < len(b.Paths[0])
		}
		return len(a.Paths) < len(b.Paths)
	})
	return groups
}

func networkOfRoot(first derivation.Segment, registry *networkspec.Registry) (networkspec.NetworkSpec, bool) {
	if !first.Hard {
		return networkspec.NetworkSpec{}, false
	}
	return registry.SubstrateByPathID(first.Value)
}
