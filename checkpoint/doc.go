// Package checkpoint implements the binary codec that serializes and
// restores a factor tree's stateful operator nodes.
//
// Save walks the DAG's unique nodes (optree.CollectUnique, deduplicated by
// OperatorID so a shared subexpression is written exactly once) and, for
// every node whose HasCheckpointState reports true, writes a
// self-describing, length-prefixed record: the node's OperatorID, the
// byte length of its state block, then the block itself (produced by the
// node's own SaveState). Data and Constant nodes write nothing; the codec
// never writes topology or operator identities beyond the bare id.
//
// Load requires the caller to have already rebuilt an equivalent tree from
// the same expression via the builder: it reconstructs the
// OperatorID → node map from that rebuilt tree and applies each record by
// id, calling LoadState on the matching node. A tree shape that no longer
// matches the checkpoint (a missing id, a corrupt length, a stale file
// version) surfaces as a CheckpointError rather than a silent partial
// restore.
package checkpoint
