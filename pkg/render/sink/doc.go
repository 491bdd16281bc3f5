// Package sink writes composed scenes to concrete output formats.
//
// [RenderJSON] produces the scene description consumed by WebGL clients:
// positions are [x, y, z] arrays, rotations are [x, y, z, w] quaternions, and
// every primitive carries a stable id derived from its source member or node.
//
// [RenderHTML] produces a standalone page with two ECharts 3D views: members
// drawn as line segments and nodes as points, endpoints highlighted. The page
// loads ECharts from a CDN and needs no server beyond whatever serves the
// file.
package sink
