/*
Package plan describes scans as YAML documents and builds them on simulated motors.

A plan names its traversal mode and lists one entry per scanned axis. Every entry owns a
source, and an entry with a group moves several motors together from tuple points:

	mode: mesh
	axes:
	  - name: x
	    speed: 20
	    source:
	      linspace: {start: 0, stop: 1, intervals: 10}
	  - group:
	      - name: y
	      - name: z
	    source:
	      points: [[0, 4], [1, 3], [2, 2]]

Load decodes and validates a plan, and Build creates its motors in a virtual.Registry and
returns the scan:

	p, err := plan.LoadFile("scan.yaml")
	if err != nil {
		return err
	}
	s, err := p.Build(virtual.NewRegistry(), scan.WithHooks(hooks))
	if err != nil {
		return err
	}
	res := p.Run(ctx, s)
*/
package plan
