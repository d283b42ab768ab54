package manifest

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/dtreg/ctxlog"
	"github.com/specialistvlad/dtreg/dtype"
	"github.com/specialistvlad/dtreg/registry"
)

// LoadFile registers every data type declared in one manifest file. The
// first registration that does not return ok aborts the load; the registry
// keeps the types registered up to that point.
func LoadFile(ctx context.Context, reg *registry.Registry, path string) error {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}

	var file File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
		return fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	for _, block := range file.DataTypes {
		if err := registerBlock(reg, block); err != nil {
			return fmt.Errorf("manifest %s: %w", path, err)
		}
	}

	logger.Debug("manifest loaded", "file", path, "data_types", len(file.DataTypes))
	return nil
}

// LoadDir recursively loads every .hcl manifest under dir.
func LoadDir(ctx context.Context, reg *registry.Registry, dir string) error {
	logger := ctxlog.FromContext(ctx)

	paths, err := findManifestFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to walk manifest directory %s: %w", dir, err)
	}
	if len(paths) == 0 {
		logger.Warn("no .hcl manifests found", "dir", dir)
		return nil
	}

	for _, path := range paths {
		if err := LoadFile(ctx, reg, path); err != nil {
			return err
		}
	}

	logger.Info("manifests loaded",
		"dir", dir,
		"files", len(paths),
		"message_types", reg.NumMessageTypes(),
		"service_types", reg.NumServiceTypes(),
	)
	return nil
}

// registerBlock turns one block into a descriptor and registers it under a
// fresh identity slot. Every block is its own logical type; duplicates
// within or across manifests surface as collisions.
func registerBlock(reg *registry.Registry, block *DataTypeBlock) error {
	kind, ok := dtype.ParseKind(block.Kind)
	if !ok {
		return fmt.Errorf("data type %q: unknown kind %q", block.Name, block.Kind)
	}
	if block.ID < 0 || block.ID > int(dtype.MaxID) {
		return fmt.Errorf("data type %q: id %d outside [0, %d]", block.Name, block.ID, dtype.MaxID)
	}
	signature, err := block.signatureValue()
	if err != nil {
		return err
	}

	desc := dtype.Descriptor{
		Kind:      kind,
		ID:        dtype.ID(block.ID),
		Signature: dtype.Signature(signature),
		Name:      block.Name,
	}
	if res := reg.Register(registry.NewSlot(), desc); res != registry.ResultOk {
		return fmt.Errorf("registering %s: %s", desc, res)
	}
	return nil
}

// findManifestFiles recursively collects the paths of all .hcl files under root.
func findManifestFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
