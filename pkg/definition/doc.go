/*
Package definition converts workflow definition markup to typed trees and back.

A workflow definition is XML of the form

	<system-workflow-definition name="Approval" initial-step="initialize">
	  <triggers>
	    <trigger name="email" class="com.example.EmailTrigger"/>
	  </triggers>
	  <steps>
	    <step type="system" label="Initialize" identifier="initialize">
	      <actions>
	        <action type="auto" label="Start" identifier="start" move="forward"/>
	      </actions>
	    </step>
	  </steps>
	</system-workflow-definition>

Each converter is constructed from a markup.Node, is read-only after parsing,
and serialises deterministically with ToXML: attributes are written in a fixed
order (type, label, identifier, then the optional ones when non-empty), no
whitespace is emitted between tags, and childless elements self-close.
*/
package definition
