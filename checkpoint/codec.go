package checkpoint

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/katalvlaran/factortree/optree"
)

// magic and formatVersion identify this codec's file format; a future
// incompatible layout change bumps formatVersion so old checkpoints fail
// fast with ErrVersionSkew instead of silently misreading.
const (
	magic         uint32 = 0x46435452 // "FCTR"
	formatVersion uint32 = 1
)

// wrapReadErr distinguishes a short/truncated file (io.EOF or
// io.ErrUnexpectedEOF mid-record) from any other read failure, so callers
// can tell a corrupt checkpoint from a filesystem-level error.
func wrapReadErr(op string, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return newCheckpointError(ErrTruncated, op)
	}

	return ioErrorf(op, err)
}

// Save writes every stateful unique node reachable from root to path, in
// ascending OperatorID order. Nodes without checkpoint state (Data,
// Constant, and any kernel that doesn't implement StatefulKernel) write
// nothing.
func Save(path string, root optree.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf("Save", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, magic); err != nil {
		return ioErrorf("Save", err)
	}
	if err := binary.Write(w, binary.LittleEndian, formatVersion); err != nil {
		return ioErrorf("Save", err)
	}

	for _, n := range optree.CollectUnique(root) {
		if !n.HasCheckpointState() {
			continue
		}

		block := &blockWriter{}
		if err := n.SaveState(block); err != nil {
			return err
		}

		if err := binary.Write(w, binary.LittleEndian, uint64(n.OpID())); err != nil {
			return ioErrorf("Save", err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint64(block.buf.Len())); err != nil {
			return ioErrorf("Save", err)
		}
		if _, err := w.Write(block.buf.Bytes()); err != nil {
			return ioErrorf("Save", err)
		}
	}

	if err := w.Flush(); err != nil {
		return ioErrorf("Save", err)
	}

	return nil
}

// Load reads path and applies each record to the node with the matching
// OperatorID in the DAG reachable from root. root must already be the
// output of building the identical expression that produced the
// checkpoint; a structural mismatch (an id the tree doesn't have, a
// truncated record) surfaces as a *CheckpointError.
func Load(path string, root optree.Node) error {
	f, err := os.Open(path)
	if err != nil {
		return ioErrorf("Load", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var gotMagic, gotVersion uint32
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil {
		return wrapReadErr("Load header", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &gotVersion); err != nil {
		return wrapReadErr("Load header", err)
	}
	if gotMagic != magic || gotVersion != formatVersion {
		return newCheckpointError(ErrVersionSkew, "unrecognized checkpoint file")
	}

	byID := make(map[optree.OperatorID]optree.Node)
	for _, n := range optree.CollectUnique(root) {
		byID[n.OpID()] = n
	}

	for {
		var rawID, length uint64
		if err := binary.Read(r, binary.LittleEndian, &rawID); err != nil {
			if err == io.EOF {
				return nil
			}

			return wrapReadErr("Load record id", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
			return wrapReadErr("Load record length", err)
		}

		data := make([]byte, length)
		if _, err := io.ReadFull(r, data); err != nil {
			return wrapReadErr("Load record body", err)
		}

		node, ok := byID[optree.OperatorID(rawID)]
		if !ok {
			return newCheckpointError(ErrMismatch, "checkpoint references an operator id absent from the rebuilt tree")
		}
		if !node.HasCheckpointState() {
			return newCheckpointError(ErrMismatch, "checkpoint carries a state block for a stateless node")
		}

		block := &blockReader{r: bytes.NewReader(data)}
		if err := node.LoadState(block); err != nil {
			return err
		}
		if block.r.Len() != 0 {
			return newCheckpointError(ErrMismatch, "state block longer than the node's state")
		}
	}
}
