package main

// demoScript walks through insert, find and delete until the tree is empty
// again.
const demoScript = `
insert One 1
expect One 1
insert Two 2
expect Two 2
insert Three 3
expect Three 3
find KEKW
expect KEKW -

delete Three
delete OMEGA
expect Three -
expect Two 2
expect One 1

delete Two
expect Three -
expect Two -
expect One 1

delete One
expect Three -
expect Two -
expect One -
empty
`
